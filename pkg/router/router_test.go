package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

func TestRoutesAreServedAndListed(t *testing.T) {
	r := New()
	r.Get("/vehicles", "vehicles.list", ok)
	r.Post("/vehicles", "vehicles.add", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vehicles", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	infos := r.Routes()
	require.Len(t, infos, 2)
	names := []string{infos[0].Name, infos[1].Name}
	assert.Contains(t, names, "vehicles.list")
	assert.Contains(t, names, "vehicles.add")
}

func TestNamedPathLookup(t *testing.T) {
	r := New()
	r.Get("/vehicles/{id}", "vehicles.show", ok)

	path, found := r.Path("vehicles.show")
	require.True(t, found)
	assert.Equal(t, "/vehicles/{id}", path)

	url, err := r.URL("vehicles.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/vehicles/7", url)

	_, found = r.Path("missing.route")
	assert.False(t, found)
}

func TestMiddlewareOrdering(t *testing.T) {
	r := New()
	var trace []string
	mw := func(label string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				trace = append(trace, label)
				next.ServeHTTP(w, req)
			})
		}
	}
	r.Use(mw("outer"), mw("inner"))
	r.Get("/", "root", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner"}, trace)
}
