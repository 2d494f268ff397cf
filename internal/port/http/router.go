// Package http is the transport layer: routing, request decoding, response
// envelopes, and the error-to-status mapping.
package http

import (
	"net/http"

	"github.com/Glassyflute/adboard/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func NewRouter(
	logger *zap.Logger,
	mm *metrics.MetricsManager,
	categories *CategoryHandler,
	ads *AdHandler,
	users *UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestLogger(logger))
	if mm != nil {
		r.Use(Metrics(mm))
	}

	r.Get("/", Liveness)

	r.Get("/cat/", categories.List)
	r.Post("/cat/create/", categories.Create)
	r.Get("/cat/{id}/", categories.Get)
	r.Patch("/cat/{id}/update/", categories.Update)
	r.Delete("/cat/{id}/delete/", categories.Delete)

	r.Get("/ad/", ads.List)
	r.Post("/ad/create/", ads.Create)
	r.Get("/ad/{id}/", ads.Get)
	r.Patch("/ad/{id}/update/", ads.Update)
	r.Post("/ad/{id}/upload/", ads.UploadImage)
	r.Delete("/ad/{id}/delete/", ads.Delete)

	r.Get("/user/", users.List)
	r.Post("/user/create/", users.Create)
	r.Get("/user/{id}/", users.Get)
	r.Patch("/user/{id}/update/", users.Update)
	r.Delete("/user/{id}/delete/", users.Delete)

	return r
}
