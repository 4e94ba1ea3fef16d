package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-dominance/internal/config"
	"go-dominance/internal/itinerary"
	"go-dominance/internal/model"
	_ "go-dominance/internal/testhelper"
)

const bloodCSV = "country,blood_type\nKorea,A\nKorea,A\nKorea,O\nJapan,B\nAtlantis,O\n"

func testConfig() config.Config {
	return config.Config{
		Addr:           ":0",
		FetchRetries:   1,
		MaxUploadBytes: 1 << 20,
		EnableMetrics:  true,
		EnableSwagger:  true,
		DefaultTopN:    20,
	}
}

func newTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(cfg).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func inlineRequest() model.Request {
	return model.Request{Source: model.Source{Type: model.SourceInline, Data: bloodCSV}}
}

func TestCreateDominance(t *testing.T) {
	srv := newTestServer(t, testConfig())

	req := inlineRequest()
	req.Focus = "Korea"
	resp := postJSON(t, srv.URL+"/api/v1/dominance", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Len(t, res.Dominant, 3)
	assert.Equal(t, "Korea", res.Dominant[0].GroupKey)
	assert.Equal(t, "A", res.Dominant[0].DominantCategory)
	assert.Equal(t, 2, res.Dominant[0].DominantCount)
	assert.Equal(t, model.Color("#e74c3c"), res.Colors[0])
	assert.Equal(t, "Korea", res.Focus)
	assert.Len(t, res.Distribution, 2)
}

func TestCreateDominanceErrors(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		name string
		body interface{}
		want int
	}{
		{"missing column", model.Request{Source: model.Source{Type: model.SourceInline, Data: "a,b\n1,2\n"}}, http.StatusUnprocessableEntity},
		{"unknown focus", model.Request{Source: model.Source{Type: model.SourceInline, Data: bloodCSV}, Focus: "Peru"}, http.StatusNotFound},
		{"local file refused", model.Request{Source: model.Source{Type: model.SourceFile, URL: "/etc/hosts"}}, http.StatusBadRequest},
		{"unknown source", model.Request{Source: model.Source{Type: "ftp"}}, http.StatusBadRequest},
		{"bad direction", model.Request{Source: model.Source{Type: model.SourceInline, Data: bloodCSV}, Direction: "up"}, http.StatusBadRequest},
		{"unknown field", map[string]string{"colour": "red"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/v1/dominance", tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestCreateDominanceUnreachableURL(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer upstream.Close()

	srv := newTestServer(t, testConfig())
	resp := postJSON(t, srv.URL+"/api/v1/dominance", model.Request{Source: model.Source{Type: model.SourceURL, URL: upstream.URL}})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestCreateDominanceLocalSourcesAllowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blood.csv")
	require.NoError(t, os.WriteFile(path, []byte(bloodCSV), 0644))

	cfg := testConfig()
	cfg.AllowLocalSources = true
	srv := newTestServer(t, cfg)

	resp := postJSON(t, srv.URL+"/api/v1/dominance", model.Request{Source: model.Source{Type: model.SourceFile, URL: path}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadDominance(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "blood.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(bloodCSV))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("top_n", "1"))
	require.NoError(t, mw.WriteField("direction", "desc"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/v1/dominance/upload", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Len(t, res.Dominant, 3)
	require.Len(t, res.Top, 1)
	assert.Equal(t, "Korea", res.Top[0].GroupKey)
}

func TestUploadDominanceWithoutFile(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("top_n", "1"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/v1/dominance/upload", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExportDominance(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := postJSON(t, srv.URL+"/api/v1/dominance/export", inlineRequest())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "dominant_blood_types_by_country.csv")

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "group_key,dominant_category,dominant_count,total_count,dominant_pct", lines[0])
	assert.Equal(t, "Korea,A,2,3,66.66666666666666", lines[1])
}

func TestExportDominanceNamedAfterColumns(t *testing.T) {
	srv := newTestServer(t, testConfig())

	req := model.Request{
		Source:         model.Source{Type: model.SourceInline, Data: "Region,MBTI\nEU,INFP\nEU,INFP\nUS,ENTJ\n"},
		GroupColumn:    "region",
		CategoryColumn: "mbti",
	}
	resp := postJSON(t, srv.URL+"/api/v1/dominance/export?format=json", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="dominant_mbti_by_region.json"`, resp.Header.Get("Content-Disposition"))
}

func TestExportDominanceXLSX(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := postJSON(t, srv.URL+"/api/v1/dominance/export?format=xlsx", inlineRequest())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("dominant")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestExportDominanceBadFormat(t *testing.T) {
	srv := newTestServer(t, testConfig())
	resp := postJSON(t, srv.URL+"/api/v1/dominance/export?format=pdf", inlineRequest())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChartDominance(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := postJSON(t, srv.URL+"/api/v1/dominance/chart", inlineRequest())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	req := inlineRequest()
	req.Focus = "Korea"
	resp = postJSON(t, srv.URL+"/api/v1/dominance/chart?kind=pie", req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/v1/dominance/chart?kind=pie", inlineRequest())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/v1/dominance/chart?kind=radar", inlineRequest())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMapDominance(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := postJSON(t, srv.URL+"/api/v1/dominance/map", inlineRequest())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.MapResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Available)
	assert.Contains(t, res.Unmapped, "Atlantis")

	codes := map[string]string{}
	for _, e := range res.Entries {
		codes[e.GroupKey] = e.ISO3
	}
	assert.Equal(t, "JPN", codes["Japan"])
}

func TestCreateProfile(t *testing.T) {
	srv := newTestServer(t, testConfig())

	body := model.ProfileRequest{Source: model.Source{Type: model.SourceSample, URL: "mbti"}, Key: "South Korea"}
	resp := postJSON(t, srv.URL+"/api/v1/profile", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p model.Profile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.True(t, p.Scaled)
	assert.Len(t, p.Values, 16)
	assert.Len(t, p.Top, 3)

	resp = postJSON(t, srv.URL+"/api/v1/profile?format=png", body)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body.Key = "Peru"
	resp = postJSON(t, srv.URL+"/api/v1/profile", body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateRanking(t *testing.T) {
	srv := newTestServer(t, testConfig())

	body := model.RankRequest{
		Source: model.Source{Type: model.SourceSample, URL: "subway"},
		Label:  "역명",
		Sum:    []string{"승차총승객수", "하차총승객수"},
		Equals: map[string]string{"노선명": "1호선"},
	}
	resp := postJSON(t, srv.URL+"/api/v1/ranking", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var r model.Ranking
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	assert.Equal(t, 3, r.Matched)
	assert.Equal(t, "서울역", r.Rows[0].Label)

	resp = postJSON(t, srv.URL+"/api/v1/ranking?format=png", body)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestGetItinerary(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, err := http.Get(srv.URL + "/api/v1/itinerary?days=3")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var plan itinerary.Plan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	assert.Len(t, plan.Days, 3)

	for _, q := range []string{"days=0", "days=4", "days=two"} {
		resp, err := http.Get(srv.URL + "/api/v1/itinerary?" + q)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestSamples(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, err := http.Get(srv.URL + "/api/v1/samples")
	require.NoError(t, err)
	defer resp.Body.Close()
	var list struct {
		Samples []string `json:"samples"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Contains(t, list.Samples, "blood_types")

	resp, err = http.Get(srv.URL + "/api/v1/samples/subway")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	resp, err = http.Get(srv.URL + "/api/v1/samples/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthzMetricsAndSwagger(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	postJSON(t, srv.URL+"/api/v1/dominance", inlineRequest())

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dominance_runs_total")

	resp, err = http.Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOptionalSurfacesDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.EnableMetrics = false
	cfg.EnableSwagger = false
	srv := newTestServer(t, cfg)

	for _, path := range []string{"/metrics", "/swagger/doc.json"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestOnlyRegisteredMethods(t *testing.T) {
	srv := newTestServer(t, testConfig())

	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
		req, err := http.NewRequest(method, srv.URL+"/api/v1/dominance", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, method)
	}
}
