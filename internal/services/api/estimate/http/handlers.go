// Package http provides http transport for offline estimates
package http

import (
	stdhttp "net/http"

	"tgage/internal/modkit/httpkit"
	"tgage/internal/services/api/estimate/domain"
	svc "tgage/internal/services/api/estimate/service"
)

// Register mounts estimate endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.estimate)
	httpkit.Get(r, "/anchors", h.tables)
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /estimate Estimate estimateOne
// @Summary Estimate from an explicit user id and/or username
// @Tags Estimate
// @Produce json
// @Param user_id query string false "Numeric Telegram user id"
// @Param username query string false "Username, leading @ optional"
// @Success 200 {object} domain.View "ok"
// @Router /estimate [get]
func (h *handlers) estimate(r *stdhttp.Request) (any, error) {
	q := domain.Query{
		UserID:   r.URL.Query().Get("user_id"),
		Username: r.URL.Query().Get("username"),
	}
	if err := httpkit.Validate(q); err != nil {
		return nil, err
	}
	return h.svc.Estimate(r.Context(), q)
}

// swagger:route GET /estimate/anchors Estimate estimateTables
// @Summary Anchor table and username rules in use
// @Tags Estimate
// @Produce json
// @Success 200 {object} domain.Tables "ok"
// @Router /estimate/anchors [get]
func (h *handlers) tables(r *stdhttp.Request) (any, error) {
	return h.svc.Tables(r.Context()), nil
}

// swagger:route POST /estimate/batch Estimate estimateBatch
// @Summary Estimate several accounts at once
// @Tags Estimate
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Queries"
// @Success 200 {object} domain.BatchOutput "ok"
// @Router /estimate/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.Batch(r.Context(), in)
}
