// Package http provides the flat username lookup endpoint
package http

import (
	stdhttp "net/http"
	"net/url"

	"tgage/internal/modkit/httpkit"
	perr "tgage/internal/platform/errors"
	"tgage/internal/platform/logger"
	"tgage/internal/services/api/lookup/domain"
	svc "tgage/internal/services/api/lookup/service"
)

// InvalidSummary heads 400 bodies
const InvalidSummary = "Invalid username"

// Register mounts the lookup endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	r.Get("/{username}", h.lookup)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /api/user/{username} Lookup lookupUser
// @Summary Estimate the creation date of a Telegram account
// @Description Resolves the username through the Bot API and falls back to a username-only estimate.
// @Tags Lookup
// @Produce json
// @Param username path string true "Telegram username, leading @ optional"
// @Success 200 {object} domain.Profile "ok"
// @Failure 500 {object} pnet.Failure "unexpected failure"
// @Router /api/user/{username} [get]
func (h *handlers) lookup(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	raw := httpkit.URLParam(r, "username")
	if un, err := url.PathUnescape(raw); err == nil {
		raw = un
	}

	p, err := h.svc.Lookup(r.Context(), raw)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeValidation) {
			httpkit.Fail(w, InvalidSummary, err)
			return
		}
		logger.C(r.Context()).Error().Err(err).Str("username", raw).Msg("lookup failed")
		httpkit.Fail(w, domain.FailureSummary, err)
		return
	}
	httpkit.JSON(w, stdhttp.StatusOK, p)
}
