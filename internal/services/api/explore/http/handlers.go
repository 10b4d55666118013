// Package http provides HTTP transport for the explore API
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"gitscout/internal/modkit/httpkit"
	"gitscout/internal/services/api/explore/domain"
)

// Register mounts explore endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.GetQuery[domain.SearchInput](r, "/search", h.search)
	httpkit.Get(r, "/{handle}", h.account)
	httpkit.Get(r, "/{handle}/repos", h.repositories)
	httpkit.Get(r, "/{handle}/stats", h.stats)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /accounts/search Explore exploreSearch
// @Summary Search accounts by login
// @Tags Explore
// @Produce json
// @Param q query string false "Search query; blank returns an empty list"
// @Param limit query int false "Max results (default 5, between 1 and 100)"
// @Success 200 {object} domain.SearchResp "ok"
// @Failure 400 {object} httpkit.Envelope "limit out of range or not a number"
// @Router /accounts/search [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// swagger:route GET /accounts/{handle} Explore exploreAccount
// @Summary Account detail by handle
// @Tags Explore
// @Produce json
// @Param handle path string true "Account login (case-insensitive)"
// @Success 200 {object} domain.Account "ok"
// @Router /accounts/{handle} [get]
func (h *handlers) account(r *stdhttp.Request) (any, error) {
	return h.svc.Account(r.Context(), chi.URLParam(r, "handle"))
}

// swagger:route GET /accounts/{handle}/repos Explore exploreRepositories
// @Summary Full repository listing, most recently updated first
// @Tags Explore
// @Produce json
// @Param handle path string true "Account login (case-insensitive)"
// @Success 200 {array} domain.Repository "ok"
// @Router /accounts/{handle}/repos [get]
func (h *handlers) repositories(r *stdhttp.Request) (any, error) {
	return h.svc.Repositories(r.Context(), chi.URLParam(r, "handle"))
}

// swagger:route GET /accounts/{handle}/stats Explore exploreStats
// @Summary Trailing-year contribution summary
// @Tags Explore
// @Produce json
// @Param handle path string true "Account login (case-insensitive)"
// @Success 200 {object} domain.ContributionSummary "ok"
// @Router /accounts/{handle}/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	return h.svc.Stats(r.Context(), chi.URLParam(r, "handle"))
}
