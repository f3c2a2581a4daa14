package docs_test

import (
	"net/http"
	"strings"
	"testing"

	"lintang/routesearch/docs"
	"lintang/routesearch/pkg/server/rest"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	Host     string                                `json:"host"`
	BasePath string                                `json:"basePath"`
	Info     map[string]interface{}                `json:"info"`
	Paths    map[string]map[string]json.RawMessage `json:"paths"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestSwaggerRegistered(t *testing.T) {
	doc := readDoc(t)
	assert.Equal(t, "/api", doc.BasePath)
	assert.Equal(t, docs.SwaggerInfo.Host, doc.Host)
	assert.Equal(t, "routesearch API", doc.Info["title"])
}

func TestSwaggerCoversRoutes(t *testing.T) {
	doc := readDoc(t)

	r := chi.NewRouter()
	rest.NavigatorRouter(r, nil, rest.NewMetrics(prometheus.NewRegistry()))

	routes := 0
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		path := strings.TrimPrefix(route, doc.BasePath)
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "route %s tidak ada di swagger doc", route) {
			_, ok = ops[strings.ToLower(method)]
			assert.True(t, ok, "method %s %s tidak ada di swagger doc", method, route)
		}
		routes++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, len(doc.Paths), routes)
}
