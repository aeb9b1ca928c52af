package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/chartopt/pkg/pipeline"
	"github.com/matzehuels/chartopt/pkg/storage"
)

const tinyDefinition = `
name = "tiny"
title = "Tiny chart"

[tooltip]
formatter = "<b>{a}</b>"

[[axis]]
dim = 0
name = "AQI"

[[axis]]
dim = 1
name = "等级"
type = "category"
data = ["优", "良"]

[[series]]
name = "beijing"
data = "beijing"
`

const tinyData = `{"beijing": [[55, "良"], [25, "优"]]}`

const tinyDocument = `{"tooltip":{"formatter":"<b>{a}</b>"},` +
	`"parallelAxis":[{"dim":0,"name":"AQI"},{"dim":1,"type":"category","name":"等级","data":["优","良"]}],` +
	`"series":[{"type":"parallel","name":"beijing","data":[[55,"良"],[25,"优"]]}]}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.New(io.Discard)
	return NewServer(pipeline.NewRunner(nil, nil, logger), storage.NewMemoryStore(), logger)
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body)
	}
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if decode(t, rec)["status"] != "ok" {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestChartLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/charts", map[string]any{
		"definition": tinyDefinition,
		"data":       json.RawMessage(tinyData),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body)
	}
	created := decode(t, rec)
	id, _ := created["id"].(string)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("id %q is not a UUID", id)
	}
	if rec.Header().Get("Location") != "/api/charts/"+id {
		t.Errorf("Location = %q", rec.Header().Get("Location"))
	}
	if created["title"] != "Tiny chart" || created["rows"] != float64(2) || created["axes"] != float64(2) {
		t.Errorf("created = %v", created)
	}
	if !strings.Contains(rec.Body.String(), `"formatter":"<b>{a}</b>"`) {
		t.Errorf("option should not be HTML-escaped: %s", rec.Body)
	}

	rec = do(t, s, http.MethodGet, "/api/charts/"+id+"/option", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != tinyDocument {
		t.Errorf("option = %d %s\nwant %s", rec.Code, rec.Body, tinyDocument)
	}

	rec = do(t, s, http.MethodGet, "/api/charts/"+id, nil)
	if rec.Code != http.StatusOK || decode(t, rec)["id"] != id {
		t.Errorf("get = %d %s", rec.Code, rec.Body)
	}

	rec = do(t, s, http.MethodGet, "/charts/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("page status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("page Content-Type = %q", ct)
	}
	page := rec.Body.String()
	if !strings.Contains(page, "<title>Tiny chart</title>") || !strings.Contains(page, "chart.setOption(") {
		t.Errorf("page = %s", page)
	}

	rec = do(t, s, http.MethodGet, "/api/charts", nil)
	charts, _ := decode(t, rec)["charts"].([]any)
	if len(charts) != 1 {
		t.Fatalf("list = %s", rec.Body)
	}
	if _, ok := charts[0].(map[string]any)["option"]; ok {
		t.Error("list entries should not carry the option")
	}

	rec = do(t, s, http.MethodDelete, "/api/charts/"+id, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}

	rec = do(t, s, http.MethodGet, "/api/charts/"+id, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d", rec.Code)
	}
	if decode(t, rec)["code"] != "CHART_NOT_FOUND" {
		t.Errorf("body = %s", rec.Body)
	}

	rec = do(t, s, http.MethodDelete, "/api/charts/"+id, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d", rec.Code)
	}
}

func TestCreateChartViolations(t *testing.T) {
	def := `
[[axis]]
dim = 0
name = "A"

[[axis]]
dim = 0
name = "B"

[[series]]
rows = [[1]]
`
	rec := do(t, newTestServer(t), http.MethodPost, "/api/charts", map[string]any{"definition": def})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var body struct {
		Violations []violation `json:"violations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Violations) != 1 || body.Violations[0].Code != "DUPLICATE_AXIS_DIMENSION" {
		t.Errorf("violations = %+v", body.Violations)
	}
}

func TestBadRequests(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"malformed body", http.MethodPost, "/api/charts", "{", http.StatusBadRequest},
		{"missing definition", http.MethodPost, "/api/charts", map[string]any{}, http.StatusBadRequest},
		{"unknown definition key", http.MethodPost, "/api/charts", map[string]any{"definition": "colour = \"red\""}, http.StatusBadRequest},
		{"unsupported series", http.MethodPost, "/api/charts", map[string]any{"definition": "[[series]]\ntype = \"pie\""}, http.StatusBadRequest},
		{"missing data key", http.MethodPost, "/api/charts", map[string]any{"definition": "[[series]]\ndata = \"nope\""}, http.StatusBadRequest},
		{"data file from client", http.MethodPost, "/api/charts", map[string]any{"definition": "data = \"/etc/passwd\""}, http.StatusBadRequest},
		{"bad format", http.MethodPost, "/api/render", map[string]any{"definition": tinyDefinition, "data": json.RawMessage(tinyData), "formats": []string{"png"}}, http.StatusBadRequest},
		{"malformed id", http.MethodGet, "/api/charts/not-a-uuid", nil, http.StatusBadRequest},
		{"unknown id", http.MethodGet, "/api/charts/" + uuid.NewString(), nil, http.StatusNotFound},
		{"unknown page", http.MethodGet, "/charts/" + uuid.NewString(), nil, http.StatusNotFound},
		{"bad limit", http.MethodGet, "/api/charts?limit=x", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.path, tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body)
			}
			if _, ok := decode(t, rec)["error"]; !ok {
				t.Errorf("error body lacks an error message: %s", rec.Body)
			}
		})
	}
}

func TestRender(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/render", map[string]any{
		"definition": tinyDefinition,
		"data":       json.RawMessage(tinyData),
		"formats":    []string{"json", "html"},
		"title":      "Rendered",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var body struct {
		Option    json.RawMessage   `json:"option"`
		Hash      string            `json:"hash"`
		Artifacts map[string]string `json:"artifacts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if string(body.Option) != tinyDocument {
		t.Errorf("option = %s", body.Option)
	}
	if body.Artifacts["json"] != tinyDocument+"\n" {
		t.Errorf("json artifact = %q", body.Artifacts["json"])
	}
	if !strings.Contains(body.Artifacts["html"], "<title>Rendered</title>") {
		t.Errorf("html artifact lacks title")
	}
	if len(body.Hash) != 64 {
		t.Errorf("hash = %q", body.Hash)
	}

	// Nothing is stored.
	rec = do(t, s, http.MethodGet, "/api/charts", nil)
	if charts, _ := decode(t, rec)["charts"].([]any); len(charts) != 0 {
		t.Errorf("render stored %d charts", len(charts))
	}
}

func TestHandleMountsBehindMiddleware(t *testing.T) {
	s := newTestServer(t)
	s.Handle("/metrics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	rec := do(t, s, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("GET /metrics = %d %q", rec.Code, rec.Body.String())
	}
}

func TestChartPageDescription(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/charts", map[string]any{
		"definition": "description = \"Readings from **one** day.\"\n" + tinyDefinition,
		"data":       json.RawMessage(tinyData),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body)
	}
	created := decode(t, rec)
	if created["description"] != "Readings from **one** day." {
		t.Errorf("description = %v", created["description"])
	}

	rec = do(t, s, http.MethodGet, "/charts/"+created["id"].(string), nil)
	if !strings.Contains(rec.Body.String(), "<p>Readings from <strong>one</strong> day.</p>") {
		t.Errorf("page lacks the description:\n%s", rec.Body)
	}
}
