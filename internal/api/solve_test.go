package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/middleware"
	"github.com/katalvlaran/gridpath/internal/solver"
)

type solveBody struct {
	Info struct {
		Rows      int    `json:"rows"`
		Cols      int    `json:"cols"`
		Start     [2]int `json:"start"`
		Goal      [2]int `json:"goal"`
		Obstacles int    `json:"obstacles"`
	} `json:"info"`
	Board   [][]int  `json:"board"`
	Path    [][2]int `json:"path"`
	Found   bool     `json:"found"`
	Overlay [][]int  `json:"overlay"`
	Nodes   int      `json:"nodes"`
	Edges   int      `json:"edges"`
}

func decode(t *testing.T, data []byte) solveBody {
	t.Helper()
	var b solveBody
	require.NoError(t, json.Unmarshal(data, &b))
	return b
}

func TestSolve_Generated(t *testing.T) {
	t.Parallel()

	w := doRequest(newTestRouter(nil), http.MethodPost, "/v1/solve",
		`{"rows": 3, "cols": 3, "start": [0, 0], "goal": [2, 2], "obstacles": 0}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	b := decode(t, w.Body.Bytes())
	assert.True(t, b.Found)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, b.Path)
	assert.Equal(t, 9, b.Nodes)
	assert.Equal(t, 12, b.Edges)
	assert.Equal(t, [2]int{2, 2}, b.Info.Goal)
	assert.Equal(t, [][]int{{1, 0, 0}, {3, 0, 0}, {3, 3, 2}}, b.Overlay)
	assert.Equal(t, [][]int{{1, 0, 0}, {0, 0, 0}, {0, 0, 2}}, b.Board)
}

func TestSolve_LayoutWithoutPath(t *testing.T) {
	t.Parallel()

	w := doRequest(newTestRouter(nil), http.MethodPost, "/v1/solve", `{"layout": [[1, -1], [-1, 2]]}`)
	require.Equal(t, http.StatusOK, w.Code)

	b := decode(t, w.Body.Bytes())
	assert.False(t, b.Found)
	assert.NotNil(t, b.Path)
	assert.Empty(t, b.Path)
	assert.Equal(t, 2, b.Info.Obstacles)
	assert.Contains(t, w.Body.String(), `"path":[]`)
}

func TestSolve_ClientErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"BadJSON", `{"rows": `, http.StatusBadRequest, "invalid_request"},
		{"BadCell", `{"rows": 2, "cols": 2, "start": {"r": 0}}`, http.StatusBadRequest, "invalid_request"},
		{"TooManyObstacles", `{"rows": 3, "cols": 3, "start": [0, 0], "goal": [2, 2], "obstacles": 8}`, http.StatusBadRequest, "invalid_configuration"},
		{"SameStartGoal", `{"rows": 3, "cols": 3, "start": [1, 1], "goal": [1, 1]}`, http.StatusBadRequest, "invalid_configuration"},
		{"TwoStarts", `{"layout": [[1, 1, 2]]}`, http.StatusBadRequest, "malformed_layout"},
		{"TooLarge", `{"rows": 100, "cols": 100, "start": [0, 0], "goal": [99, 99]}`, http.StatusRequestEntityTooLarge, "board_too_large"},
		{"OverflowingDimensions", `{"rows": 4611686018427387929, "cols": 4, "goal": [0, 1]}`, http.StatusRequestEntityTooLarge, "board_too_large"},
		{"ShortCell", `{"rows": 3, "cols": 3, "start": [1], "goal": [2, 2]}`, http.StatusBadRequest, "invalid_request"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(newTestRouter(nil), http.MethodPost, "/v1/solve", tc.body)
			require.Equal(t, tc.status, w.Code, w.Body.String())

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body["code"])
			assert.NotEmpty(t, body["request_id"])
			assert.Equal(t, body["request_id"], w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

type failingSolver struct{}

func (failingSolver) Solve(context.Context, solver.Request) (*solver.Result, error) {
	return nil, errors.New("disk on fire")
}

func TestSolve_InternalErrorIsOpaque(t *testing.T) {
	t.Parallel()

	w := doRequest(newTestRouter(failingSolver{}), http.MethodPost, "/v1/solve", `{"layout": [[1, 2]]}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk on fire")
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestSolve_StreamedBodyOverLimit(t *testing.T) {
	t.Parallel()

	body := `{"layout": [[1, 2]], "pad": "` + strings.Repeat("x", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/solve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	w := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())
	var env map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, middleware.ErrCodeBodyTooLarge, env["code"])
}
