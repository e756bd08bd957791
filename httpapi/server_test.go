package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/httpapi"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T) *httpapi.Server {
	t.Helper()
	cfg := config.Default()
	cfg.Server.MaxDimension = 40
	return httpapi.NewServer(cfg, nil)
}

func do(t *testing.T, s *httpapi.Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(t, newServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAlgorithms(t *testing.T) {
	w := do(t, newServer(t), http.MethodGet, "/v1/algorithms", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Algorithms []string `json:"algorithms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, generator.Algorithms(), resp.Algorithms)
}

func TestGenerate_Query(t *testing.T) {
	w := do(t, newServer(t), http.MethodGet, "/v1/mazes?width=5&height=4&algorithm=kruskal&seed=9", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rep generator.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, 5, rep.Request.Width)
	assert.Equal(t, 4, rep.Request.Height)
	assert.Equal(t, generator.Kruskal, rep.Request.Algorithm)
	assert.Equal(t, 19, rep.Edges)
	assert.True(t, rep.Perfect)
	assert.Len(t, rep.Rows, 9)
	assert.NotEmpty(t, rep.ID)
}

func TestGenerate_Formats(t *testing.T) {
	s := newServer(t)

	w := do(t, s, http.MethodGet, "/v1/mazes?width=4&height=3&format=yaml", "")
	require.Equal(t, http.StatusOK, w.Code)
	var rep generator.Report
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, 11, rep.Edges)

	w = do(t, s, http.MethodGet, "/v1/mazes?width=4&height=3&format=text", "")
	require.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 7)
	assert.Equal(t, "+---+---+---+---+", lines[0])

	w = do(t, s, http.MethodGet, "/v1/mazes?format=xml", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerate_Body(t *testing.T) {
	body := `{"width":6,"height":6,"algorithm":"wilson","seed":3,"trim_passes":-1}`
	w := do(t, newServer(t), http.MethodPost, "/v1/mazes", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rep generator.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, generator.Wilson, rep.Request.Algorithm)
	assert.Equal(t, len(rep.Solution)-1, rep.Edges)
	// unspecified fields keep the configured defaults
	assert.Equal(t, generator.RootSolution, rep.Request.BranchRoot)
}

func TestGenerate_Errors(t *testing.T) {
	s := newServer(t)
	cases := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"bad number", http.MethodGet, "/v1/mazes?width=abc", "", http.StatusBadRequest},
		{"zero width", http.MethodGet, "/v1/mazes?width=0", "", http.StatusBadRequest},
		{"too large", http.MethodGet, "/v1/mazes?width=41", "", http.StatusBadRequest},
		{"unknown algorithm", http.MethodGet, "/v1/mazes?algorithm=prim", "", http.StatusBadRequest},
		{"bad root", http.MethodGet, "/v1/mazes?root=leaf", "", http.StatusBadRequest},
		{"incomplete", http.MethodGet, "/v1/mazes?algorithm=aldous-broder&max_steps=3", "", http.StatusUnprocessableEntity},
		{"bad json", http.MethodPost, "/v1/mazes", "{", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, s, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestMetrics(t *testing.T) {
	s := newServer(t)
	require.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/v1/mazes?width=3&height=3", "").Code)
	require.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/v1/mazes?width=0", "").Code)

	w := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	out := w.Body.String()
	assert.Contains(t, out, `labyrinth_mazes_generated_total{algorithm="backtracking",outcome="ok"} 1`)
	assert.Contains(t, out, `labyrinth_mazes_generated_total{algorithm="backtracking",outcome="rejected"} 1`)
	assert.Contains(t, out, `labyrinth_generation_duration_seconds_count{algorithm="backtracking"} 1`)
}
