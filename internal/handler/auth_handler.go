package handler

import (
	"net/http"

	"github.com/bagdasarian/team-tasks/internal/service"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.setCookie(w, tokenCookie, res.Token, h.cookies.TokenTTL)
	if res.Company != nil {
		h.setCookie(w, companyCookie, res.Company.Company.ID, h.cookies.TokenTTL)
	}
	writeJSON(w, http.StatusCreated, domainAuthToHTTP(res))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.setCookie(w, tokenCookie, res.Token, h.cookies.TokenTTL)
	writeJSON(w, http.StatusOK, domainAuthToHTTP(res))
}

// Logout только очищает cookie: токены не отзываются
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, tokenCookie)
	h.clearCookie(w, companyCookie)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "logged out"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.authService.Me(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}

// UpdateMe меняет имя и аватар; "avatar": null удаляет аватар
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.authService.UpdateProfile(r.Context(), p, profileRequestToService(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}
