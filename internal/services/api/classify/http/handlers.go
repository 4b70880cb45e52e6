// Package http provides http transport for classify
package http

import (
	stdhttp "net/http"

	"langid/internal/modkit/httpkit"
	"langid/internal/services/api/classify/domain"
	svc "langid/internal/services/api/classify/service"
)

// Register mounts classify endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.DetectInput](r, "/text", h.text)
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch)
	httpkit.PostJSON[domain.InitInput](r, "/init", h.init)
	httpkit.PostJSON[domain.ReleaseInput](r, "/release", h.release)
	httpkit.Get(r, "/version", h.version)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /classify/text Classify classifyText
// @Summary Classify a single text
// @Tags Classify
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text"
// @Success 200 {object} domain.DetectOutput "ok"
// @Router /classify/text [post]
func (h *handlers) text(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Text(r.Context(), in)
}

// swagger:route POST /classify/batch Classify classifyBatch
// @Summary Classify up to 256 texts in order
// @Tags Classify
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Batch"
// @Success 200 {object} domain.BatchOutput "ok"
// @Failure 400 {object} httpkit.Envelope "too many items"
// @Router /classify/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.Batch(r.Context(), in)
}

// swagger:route POST /classify/init Classify classifyInit
// @Summary Warm up the classifier
// @Tags Classify
// @Accept json
// @Produce json
// @Param payload body domain.InitInput true "Hint"
// @Success 200 {object} domain.InitOutput "ok"
// @Router /classify/init [post]
func (h *handlers) init(r *stdhttp.Request, in domain.InitInput) (any, error) {
	return h.svc.Init(r.Context(), in)
}

// swagger:route POST /classify/release Classify classifyRelease
// @Summary Release a detection handle
// @Tags Classify
// @Accept json
// @Produce json
// @Param payload body domain.ReleaseInput true "Handle"
// @Success 200 {object} domain.ReleaseOutput "ok"
// @Router /classify/release [post]
func (h *handlers) release(r *stdhttp.Request, in domain.ReleaseInput) (any, error) {
	return h.svc.Release(r.Context(), in)
}

// swagger:route GET /classify/version Classify classifyVersion
// @Summary Classifier contract version
// @Tags Classify
// @Produce json
// @Success 200 {object} domain.VersionOutput "ok"
// @Router /classify/version [get]
func (h *handlers) version(r *stdhttp.Request) (any, error) {
	return h.svc.Version(r.Context())
}
