package rest_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"lintang/routesearch/pkg/report"
	"lintang/routesearch/pkg/routedata"
	"lintang/routesearch/pkg/server/rest"
	"lintang/routesearch/pkg/server/rest/service"
	"lintang/routesearch/pkg/spatial"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `{
  "initial": 1,
  "final": 3,
  "intersections": [
    {"identifier": 1, "latitude": 38.9861, "longitude": -3.9272},
    {"identifier": 2, "latitude": 38.9868, "longitude": -3.9262},
    {"identifier": 3, "latitude": 38.9874, "longitude": -3.9250},
    {"identifier": 4}
  ],
  "segments": [
    {"origin": 1, "destination": 2, "distance": 100, "speed": 50, "name": "Calle Toledo"},
    {"origin": 2, "destination": 3, "distance": 200, "speed": 50},
    {"origin": 1, "destination": 3, "distance": 500, "speed": 50}
  ],
  "candidates": [[1, 1200], [2, 300], [3, 800]],
  "number_stations": 2
}`

func newTestServer(t *testing.T) (*chi.Mux, *prometheus.Registry) {
	t.Helper()
	parsed, err := routedata.Parse([]byte(doc))
	require.NoError(t, err)
	ds, err := routedata.NewDataset(parsed)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)
	r := chi.NewRouter()
	r.Use(rest.PromeHttpMiddleware(m))
	svc := service.NewNavigationService(ds, spatial.NewH3Index(ds.Graph.Intersections()), 2, zerolog.Nop())
	rest.NavigatorRouter(r, svc, m)
	return r, reg
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestShortestPath(t *testing.T) {
	r, reg := newTestServer(t)

	t.Run("success by id", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/api/search/route", `{"from": {"id": 1}, "to": {"id": 3}, "algorithm": "ucs"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp rest.RouteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ucs", resp.Result.Strategy)
		assert.Equal(t, "goal_found", resp.Result.Status)
		assert.Equal(t, []int64{1, 2, 3}, resp.Result.Path)
		assert.Equal(t, 6.0, resp.Result.Cost)
		assert.Equal(t, "0:00:06", resp.Cost)
		assert.NotEmpty(t, resp.Result.Polyline)
		assert.Nil(t, resp.FromSnap)
	})

	t.Run("success by coordinate", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/api/search/route",
			`{"from": {"lat": 38.98611, "lon": -3.92721}, "to": {"lat": 38.98741, "lon": -3.92499}, "heuristic": "euclidean"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp rest.RouteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "astar", resp.Result.Strategy)
		require.NotNil(t, resp.FromSnap)
		assert.Equal(t, int64(1), resp.FromSnap.Intersection)
		assert.NotNil(t, resp.FromSnap.OnRoad)
		require.NotNil(t, resp.ToSnap)
		assert.Equal(t, int64(3), resp.ToSnap.Intersection)
	})

	t.Run("no solution", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/api/search/route", `{"from": {"id": 3}, "to": {"id": 1}, "algorithm": "bfs"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp rest.RouteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Result.Found)
		assert.Equal(t, "exhausted", resp.Result.Status)
	})

	cases := []struct {
		name string
		body string
		code int
	}{
		{"missing endpoint", `{"from": {"id": 1}}`, http.StatusBadRequest},
		{"invalid heuristic", `{"from": {"id": 1}, "to": {"id": 3}, "heuristic": "chebyshev"}`, http.StatusBadRequest},
		{"invalid latitude", `{"from": {"lat": 123, "lon": 1}, "to": {"id": 3}}`, http.StatusBadRequest},
		{"unknown algorithm", `{"from": {"id": 1}, "to": {"id": 3}, "algorithm": "tabu"}`, http.StatusBadRequest},
		{"unknown intersection", `{"from": {"id": 1}, "to": {"id": 99}}`, http.StatusNotFound},
		{"location not covered", `{"from": {"lat": 0, "lon": -30}, "to": {"id": 3}}`, http.StatusNotFound},
		{"malformed json", `{"from": `, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, r, http.MethodPost, "/api/search/route", tc.body)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())

			var errResp rest.ErrResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.ErrorText)
		})
	}

	t.Run("metrics", func(t *testing.T) {
		families, err := reg.Gather()
		require.NoError(t, err)
		names := []string{}
		for _, f := range families {
			names = append(names, f.GetName())
		}
		assert.Contains(t, names, "routesearch_search_query_count")
		assert.Contains(t, names, "routesearch_total_requests")
	})
}

func TestCompare(t *testing.T) {
	r, _ := newTestServer(t)

	rec := do(t, r, http.MethodPost, "/api/search/compare", `{"from": {"id": 1}, "to": {"id": 3}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp rest.CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 5)
	byName := map[string]report.Summary{}
	for i, want := range []string{"bfs", "dfs", "ucs", "astar", "gbfs"} {
		assert.Equal(t, want, resp.Results[i].Strategy)
		assert.NotEmpty(t, resp.Results[i].RunID)
		byName[want] = resp.Results[i]
	}
	assert.Equal(t, []int64{1, 3}, byName["bfs"].Path)
	assert.Equal(t, 6.0, byName["astar"].Cost)

	rec = do(t, r, http.MethodPost, "/api/search/compare", `{"from": {"id": 1}, "to": {"id": 3}, "algorithms": ["ucs", "nope"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIntersection(t *testing.T) {
	r, _ := newTestServer(t)

	rec := do(t, r, http.MethodGet, "/api/search/intersections/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var info service.IntersectionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, int64(1), info.ID)
	require.Len(t, info.Neighbors, 2)
	assert.Equal(t, int64(2), info.Neighbors[0].ID)
	assert.Equal(t, "Calle Toledo", info.Neighbors[0].StreetName)
	assert.Equal(t, 2.0, info.Neighbors[0].TravelTime)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/search/intersections/99", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/search/intersections/abc", "").Code)
}

func TestFacility(t *testing.T) {
	r, _ := newTestServer(t)

	rec := do(t, r, http.MethodPost, "/api/search/facility", `{"algorithm": "hc", "seed": 7}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp rest.FacilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hc", resp.Algorithm)
	assert.Len(t, resp.Stations, 2)
	assert.GreaterOrEqual(t, resp.Fitness, 0.0)

	rec = do(t, r, http.MethodPost, "/api/search/facility", `{"algorithm": "rs", "stations": 1, "network": true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Stations, 1)

	assert.Equal(t, http.StatusUnprocessableEntity, do(t, r, http.MethodPost, "/api/search/facility", `{"stations": 5}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/api/search/facility", `{"algorithm": "tabu"}`).Code)
}
