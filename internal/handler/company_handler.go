package handler

import (
	"net/http"
	"strings"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	companies, err := h.teamService.ListMyCompanies(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCompaniesToHTTP(companies))
}

// CreateCompany создает компанию и переключает на нее пользователя
func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req CreateCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	company, err := h.teamService.CreateCompany(r.Context(), p, req.Name)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	// новая компания сразу становится активной
	h.setCookie(w, companyCookie, company.Company.ID, h.cookies.TokenTTL)
	writeJSON(w, http.StatusCreated, domainCompanyToHTTP(company))
}

// SwitchCompany делает компанию активной через cookie current-company-id
func (h *Handler) SwitchCompany(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req SwitchCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	companyID := strings.TrimSpace(req.CompanyID)
	if companyID == "" {
		h.handleError(w, r, domain.NewValidationError("companyId is required"))
		return
	}

	company, err := h.teamService.SwitchCompany(r.Context(), p, companyID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.setCookie(w, companyCookie, company.Company.ID, h.cookies.TokenTTL)
	writeJSON(w, http.StatusOK, domainCompanyToHTTP(company))
}
