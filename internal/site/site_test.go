package site

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/faculty-cli/internal/fetch"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

const stanfordListing = `
<div class="hb-card">
  <h3><a href="/people/jane-smith">Jane Smith</a></h3>
  <div class="hb-card__description">Professor of Chemical Engineering</div>
</div>
<div class="hb-card">
  <h3><a href="/people/view-all">View All</a></h3>
  <div class="hb-card__description">Professor</div>
</div>
<div class="hb-card">
  <h3><a href="/people/bob-jones">Bob Jones</a></h3>
  <div class="hb-card__description">Lecturer</div>
</div>`

func TestStanfordListCandidates(t *testing.T) {
	s := NewStanford(nil)
	recs := s.ListCandidates(doc(t, stanfordListing), "https://cheme.stanford.edu/people")

	require.Len(t, recs, 1)
	assert.Equal(t, "Jane Smith", recs[0].Name)
	assert.Equal(t, "Professor of Chemical Engineering", recs[0].Title)
	assert.Equal(t, "https://cheme.stanford.edu/people/jane-smith", recs[0].ProfileURL)
}

func TestStanfordViewsRowFallback(t *testing.T) {
	html := `
<div class="views-row">
  <h3><a href="/people/ada-lovelace">Ada Lovelace</a></h3>
  <div class="views-field-su-person-short-title">Assistant Professor</div>
</div>`
	s := NewStanford(nil)
	recs := s.ListCandidates(doc(t, html), "https://sustainability.stanford.edu/people")

	require.Len(t, recs, 1)
	assert.Equal(t, "Ada Lovelace", recs[0].Name)
}

func TestStanfordNextPage(t *testing.T) {
	s := NewStanford(nil)

	withPager := doc(t, `<ul><li class="pager__item--next"><a href="?page=2">Next</a></li></ul>`)
	next := s.NextPage(withPager, "https://sustainability.stanford.edu/people")
	assert.Equal(t, "https://sustainability.stanford.edu/people?page=2", next)

	assert.Empty(t, s.NextPage(doc(t, `<p>no pager</p>`), "https://cheme.stanford.edu/people"))
}

type stubFetcher struct {
	pages map[string]string
	calls []string
}

func (s *stubFetcher) Fetch(_ context.Context, req fetch.Request) (*fetch.Page, error) {
	s.calls = append(s.calls, req.URL)
	html, ok := s.pages[req.URL]
	if !ok {
		return nil, assert.AnError
	}
	return &fetch.Page{URL: req.URL, FinalURL: req.URL, HTML: html, StatusCode: 200}, nil
}

func TestStanfordCanonicalHop(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{
		"https://profiles.stanford.edu/jane-smith": `
			<a href="mailto:jsmith@stanford.edu">Email</a>
			<a href="tel:650-555-0100">Call</a>`,
	}}
	s := NewStanford(f)

	deptPage := doc(t, `
		<a href="https://profiles.stanford.edu/jane-smith">Stanford Profile</a>
		<a href="mailto:dept-desk@stanford.edu">Department contact</a>`)
	enr := s.Enrich(context.Background(), deptPage, "https://cheme.stanford.edu/people/jane-smith")

	require.Equal(t, []string{"https://profiles.stanford.edu/jane-smith"}, f.calls)
	assert.Equal(t, "jsmith@stanford.edu", enr.Email, "canonical page wins")
	assert.Equal(t, "650-555-0100", enr.Phone)
}

func TestStanfordCanonicalHopFailureFallsBack(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{}}
	s := NewStanford(f)

	deptPage := doc(t, `
		<a href="https://profiles.stanford.edu/jane-smith">Stanford Profile</a>
		<a href="mailto:jane@stanford.edu">Email</a>`)
	enr := s.Enrich(context.Background(), deptPage, "https://cheme.stanford.edu/people/jane-smith")

	assert.Equal(t, "jane@stanford.edu", enr.Email, "department page used when hop fails")
}

func TestNorthwesternLooseTextCandidates(t *testing.T) {
	html := `
<div>
  <a href="/faculty/grace-hopper">Grace Hopper</a>
  Walter P. Murphy Professor of Materials Science
</div>
<div>
  <a href="/faculty/staff-page">Department Staff</a>
  Administrative Coordinator
</div>`
	n := NewNorthwestern()
	recs := n.ListCandidates(doc(t, html), "https://www.mccormick.northwestern.edu/materials-science/people/faculty/")

	require.Len(t, recs, 1)
	assert.Equal(t, "Grace Hopper", recs[0].Name)
	assert.Contains(t, recs[0].Title, "Professor")
}

func TestNorthwesternArticleCards(t *testing.T) {
	html := `
<article class="people">
  <h3><a href="/people/alan-turing">Alan Turing</a></h3>
  <p>Associate Professor of Chemistry</p>
</article>`
	n := NewNorthwestern()
	recs := n.ListCandidates(doc(t, html), "https://chemistry.northwestern.edu/people/")

	require.Len(t, recs, 1)
	assert.Equal(t, "Alan Turing", recs[0].Name)
	assert.Equal(t, "Associate Professor of Chemistry", recs[0].Title)
}

func TestScanCardsFirstMatchingSpecWins(t *testing.T) {
	html := `
<div class="views-row">
  <h3><a href="/p/one">First Person</a></h3>
  <div class="t">Professor</div>
</div>
<li class="other"><a href="/p/two">Second Person</a> Professor</li>`
	recs := scanCards(doc(t, html), "https://example.edu/people", []cardSpec{
		{card: ".views-row", nameSel: "h3 a", titleSel: ".t"},
		{card: "li.other", nameSel: "a", titleSel: ""},
	})

	require.Len(t, recs, 1)
	assert.Equal(t, "First Person", recs[0].Name)
}

func TestScanCardsDedupesWithinPage(t *testing.T) {
	html := `
<div class="views-row"><h3><a href="/p/x">Jane Smith</a></h3><div class="t">Professor</div></div>
<div class="views-row"><h3><a href="/p/x">Jane Smith</a></h3><div class="t">Professor</div></div>`
	recs := scanCards(doc(t, html), "https://example.edu", []cardSpec{
		{card: ".views-row", nameSel: "h3 a", titleSel: ".t"},
	})
	assert.Len(t, recs, 1)
}

func TestCardWithoutTitleDefaultsToProfessor(t *testing.T) {
	html := `
<div class="views-row">
  <h3><a href="/people/jane-smith">Jane Smith</a></h3>
</div>`
	m := NewMIT()
	recs := m.ListCandidates(doc(t, html), "https://dmse.mit.edu/people/faculty/")

	require.Len(t, recs, 1)
	assert.Equal(t, "Jane Smith", recs[0].Name)
	assert.Equal(t, "Professor", recs[0].Title)
}

func TestStanfordCardWithoutTitleDefaultsToProfessor(t *testing.T) {
	html := `
<div class="hb-card">
  <h3><a href="/people/jane-smith">Jane Smith</a></h3>
</div>`
	s := NewStanford(nil)
	recs := s.ListCandidates(doc(t, html), "https://cheme.stanford.edu/people")

	require.Len(t, recs, 1)
	assert.Equal(t, "Professor", recs[0].Title)
}

func TestCardWithoutLinkFallsBackToListingURL(t *testing.T) {
	html := `
<div class="views-row">
  <h3><a>Jane Smith</a></h3>
  <div class="field--name-field-title">Professor of Materials Science</div>
</div>`
	m := NewMIT()
	recs := m.ListCandidates(doc(t, html), "https://dmse.mit.edu/people/faculty/")

	require.Len(t, recs, 1)
	assert.Equal(t, "https://dmse.mit.edu/people/faculty/", recs[0].ProfileURL)
}

func TestListingNavLinksNeverBecomeCandidates(t *testing.T) {
	html := `
<ul>
  <li><a href="/people/john-doe">John Doe</a> Professor</li>
  <li><a href="/people/">Faculty</a></li>
</ul>`
	c := NewCaltech()
	recs := c.ListCandidates(doc(t, html), "https://www.cms.caltech.edu/people")

	require.Len(t, recs, 1)
	assert.Equal(t, "John Doe", recs[0].Name)
	assert.Equal(t, "Professor", recs[0].Title)
}

func TestRegistryEnricherFor(t *testing.T) {
	r := Default(nil)

	assert.Equal(t, "stanford", r.EnricherFor("https://profiles.stanford.edu/jane").Institution())
	assert.Equal(t, "mit", r.EnricherFor("https://dmse.mit.edu/people/x").Institution())
	assert.Equal(t, "generic", r.EnricherFor("https://janesmithlab.org/about").Institution())
	assert.Equal(t, "generic", r.EnricherFor("").Institution())
}

func TestRegistryForInstitution(t *testing.T) {
	r := Default(nil)

	a, err := r.ForInstitution("berkeley")
	require.NoError(t, err)
	assert.Equal(t, "berkeley", a.Institution())

	_, err = r.ForInstitution("oxford")
	assert.Error(t, err)
}

func TestGenericEnrich(t *testing.T) {
	html := `
<a href="mailto:prof@example.edu">prof@example.edu</a>
<a href="https://scholar.google.com/citations?user=abc">Scholar</a>`
	g := NewGeneric()
	enr := g.Enrich(context.Background(), doc(t, html), "https://example.edu/people/prof")

	assert.Equal(t, "prof@example.edu", enr.Email)
	assert.Contains(t, enr.GoogleScholar, "scholar.google.com")
}
