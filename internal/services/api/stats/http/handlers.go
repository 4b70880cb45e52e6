// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"langid/internal/modkit/httpkit"
	"langid/internal/services/api/stats/domain"
	svc "langid/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// buckets by language code
	httpkit.PostJSON[domain.ByLangInput](r, "/langs", h.byLang)

	// buckets by day and language code
	httpkit.PostJSON[domain.DailyInput](r, "/daily", h.daily)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /stats/langs Stats statsByLang
// @Summary Recorded detection counts per language
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.ByLangInput true "Query"
// @Success 200 {array} domain.ByLangRow "ok"
// @Router /stats/langs [post]
func (h *handlers) byLang(r *stdhttp.Request, in domain.ByLangInput) (any, error) {
	return h.svc.ByLang(r.Context(), in)
}

// swagger:route POST /stats/daily Stats statsDaily
// @Summary Recorded detection counts per day and language
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.DailyInput true "Query"
// @Success 200 {array} domain.DailyRow "ok"
// @Router /stats/daily [post]
func (h *handlers) daily(r *stdhttp.Request, in domain.DailyInput) (any, error) {
	return h.svc.Daily(r.Context(), in)
}
