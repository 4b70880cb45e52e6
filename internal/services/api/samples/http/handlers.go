// Package http provides http transport for samples
package http

import (
	stdhttp "net/http"

	"langid/internal/modkit/httpkit"
	"langid/internal/services/api/samples/domain"
	svc "langid/internal/services/api/samples/service"
)

// Register mounts samples endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.RecentInput](r, "/recent", h.recent)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /samples/recent Samples samplesRecent
// @Summary Recently recorded detections
// @Tags Samples
// @Accept json
// @Produce json
// @Param payload body domain.RecentInput true "Query"
// @Success 200 {array} domain.Sample "ok"
// @Router /samples/recent [post]
func (h *handlers) recent(r *stdhttp.Request, in domain.RecentInput) (any, error) {
	return h.svc.Recent(r.Context(), in)
}
