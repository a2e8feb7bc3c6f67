package model

// FetchMode selects how a listing page is retrieved.
type FetchMode string

const (
	// FetchStatic uses a plain HTTP GET with the default desktop UA.
	FetchStatic FetchMode = "static"
	// FetchGooglebot uses a plain HTTP GET with a Googlebot UA, for sites
	// that only serve full HTML to crawlers.
	FetchGooglebot FetchMode = "googlebot"
	// FetchBrowser drives the headless browser for JS-rendered pages.
	FetchBrowser FetchMode = "browser"
)

// Site is one configured department listing page.
type Site struct {
	Key         string    `json:"key" yaml:"key"`
	Institution string    `json:"institution" yaml:"institution"`
	Name        string    `json:"name" yaml:"name"`
	URL         string    `json:"url" yaml:"url"`
	Mode        FetchMode `json:"mode" yaml:"mode"`
	// WaitSelector is the CSS selector the browser fetcher waits for before
	// reading the DOM. Only meaningful when Mode is FetchBrowser.
	WaitSelector string `json:"wait_selector,omitempty" yaml:"wait_selector,omitempty"`
}

// Targets is the fixed table of department listing pages the pipeline
// crawls. Order is crawl order.
func Targets() []Site {
	return []Site{
		{Key: "stanford_cheme", Institution: "stanford", Name: "Stanford Chemical Engineering", URL: "https://cheme.stanford.edu/people/faculty", Mode: FetchStatic},
		{Key: "stanford_mse", Institution: "stanford", Name: "Stanford Materials Science & Engineering", URL: "https://mse.stanford.edu/people/faculty", Mode: FetchStatic},
		{Key: "stanford_doerr", Institution: "stanford", Name: "Stanford Doerr School of Sustainability", URL: "https://sustainability.stanford.edu/our-community/faculty-0", Mode: FetchStatic},
		{Key: "mit_dmse", Institution: "mit", Name: "MIT Materials Science & Engineering", URL: "https://dmse.mit.edu/people/faculty/", Mode: FetchStatic},
		{Key: "harvard_chemistry", Institution: "harvard", Name: "Harvard Chemistry & Chemical Biology", URL: "https://chemistry.harvard.edu/people", Mode: FetchStatic},
		{Key: "harvard_seas", Institution: "harvard", Name: "Harvard SEAS", URL: "https://seas.harvard.edu/about-us/directory?role[46]=46", Mode: FetchBrowser, WaitSelector: `a[href*="/people/"]`},
		{Key: "yale_chemistry", Institution: "yale", Name: "Yale Chemistry", URL: "https://chem.yale.edu/people/faculty", Mode: FetchStatic},
		{Key: "princeton_chemistry", Institution: "princeton", Name: "Princeton Chemistry", URL: "https://chemistry.princeton.edu/faculty-research/", Mode: FetchGooglebot},
		{Key: "uchicago_chemistry", Institution: "uchicago", Name: "UChicago Chemistry", URL: "https://chemistry.uchicago.edu/faculty", Mode: FetchBrowser, WaitSelector: `a[href^="/faculty/"]`},
		{Key: "northwestern_chemistry", Institution: "northwestern", Name: "Northwestern Chemistry", URL: "https://chemistry.northwestern.edu/people/faculty/index.html", Mode: FetchBrowser, WaitSelector: "article.people"},
		{Key: "northwestern_mse", Institution: "northwestern", Name: "Northwestern Materials Science", URL: "https://www.mccormick.northwestern.edu/materials-science/people/faculty/", Mode: FetchGooglebot},
		{Key: "berkeley_chemistry", Institution: "berkeley", Name: "UC Berkeley Chemistry", URL: "https://chemistry.berkeley.edu/people/faculty", Mode: FetchGooglebot},
		{Key: "berkeley_cbe", Institution: "berkeley", Name: "UC Berkeley Chemical & Biomolecular Engineering", URL: "https://chemistry.berkeley.edu/people/cbe-faculty", Mode: FetchGooglebot},
		{Key: "caltech_cce", Institution: "caltech", Name: "Caltech Chemistry & Chemical Engineering", URL: "https://www.cce.caltech.edu/faculty", Mode: FetchBrowser, WaitSelector: `a[href*="/people/"]`},
		{Key: "caltech_materials", Institution: "caltech", Name: "Caltech Materials Science", URL: "https://www.cms.caltech.edu/people", Mode: FetchStatic},
	}
}

// TargetByKey returns the site with the given key, or false.
func TargetByKey(key string) (Site, bool) {
	for _, s := range Targets() {
		if s.Key == key {
			return s, true
		}
	}
	return Site{}, false
}
