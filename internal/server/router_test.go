package server

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

type routesHandler struct {
	routes []string
	body   string
}

func (h routesHandler) Routes() []string { return h.routes }

func (h routesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(h.body + ":" + r.PathValue("id")))
}

func TestBasicRouter(t *testing.T) {
	t.Run("Handle filters by method", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodGet, "/track/{id}", routesHandler{body: "track"})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/track/abc", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "track:abc" {
			t.Errorf("unexpected GET response %d %q", rec.Code, rec.Body.String())
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/track/abc", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
		if rec.Header().Get("Allow") != http.MethodGet {
			t.Errorf("expected Allow: GET, got %q", rec.Header().Get("Allow"))
		}
	})

	t.Run("Handler registers every route", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handler(routesHandler{routes: []string{"/a/{id}", "/b/{id}"}, body: "multi"})

		for _, path := range []string{"/a/1", "/b/1"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if rec.Body.String() != "multi:1" {
				t.Errorf("%s: unexpected body %q", path, rec.Body.String())
			}
		}
	})

	t.Run("Middleware runs in the order added", func(t *testing.T) {
		var order []string
		mark := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		router := NewBasicRouter()
		router.Use(mark("first"), mark("second"))
		router.Handle(http.MethodGet, "/x/{id}", routesHandler{body: "x"})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x/1", nil))

		if !reflect.DeepEqual(order, []string{"first", "second"}) {
			t.Errorf("unexpected middleware order %v", order)
		}
	})

	t.Run("Middleware wraps the method filter", func(t *testing.T) {
		router := NewBasicRouter()
		router.Use(CORS(nil))
		router.Handle(http.MethodGet, "/track/{id}", routesHandler{body: "track"})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/track/abc", nil))

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected preflight 204, got %d", rec.Code)
		}
	})
}
