package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/faculty-cli/internal/model"
)

func testServer() *httptest.Server {
	records := []model.FacultyRecord{
		{Name: "Jane Smith", Title: "Professor", DepartmentSource: "https://cheme.stanford.edu/people/faculty", Email: "jsmith@stanford.edu"},
		{Name: "Bob Jones", Title: "Assistant Professor", DepartmentSource: "https://chem.yale.edu/people/faculty"},
	}
	return httptest.NewServer(New(records).Handler())
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealth(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, body := get(t, ts.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "ok", out["status"])
	assert.EqualValues(t, 2, out["records"])
}

func TestRecordsList(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, body := get(t, ts.URL+"/records")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out []model.FacultyRecord
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out, 2)
}

func TestRecordsSourceFilter(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	_, body := get(t, ts.URL+"/records?source=yale")
	var out []model.FacultyRecord
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Bob Jones", out[0].Name)

	_, body = get(t, ts.URL+"/records?source=oxford")
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Empty(t, out)
}

func TestRecordByName(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, body := get(t, ts.URL+"/records/"+url.PathEscape("Jane Smith"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out model.FacultyRecord
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "jsmith@stanford.edu", out.Email)
}

func TestRecordByNameCaseInsensitive(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, _ := get(t, ts.URL+"/records/"+url.PathEscape("jane smith"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRecordNotFound(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, _ := get(t, ts.URL+"/records/nobody")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
