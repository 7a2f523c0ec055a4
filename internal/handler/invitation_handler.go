package handler

import (
	"net/http"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req InviteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	inv, err := h.invitationService.InviteMember(r.Context(), p, req.Email)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainInvitationToHTTP(inv))
}

func (h *Handler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	invitations, err := h.invitationService.ListMyInvitations(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainInvitationsToHTTP(invitations))
}

func (h *Handler) decodeInvitationID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req InvitationActionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return "", false
	}
	if req.InvitationID == "" {
		h.handleError(w, r, domain.NewValidationError("invitationId is required"))
		return "", false
	}
	return req.InvitationID, true
}

// AcceptInvitation вступает в компанию и сразу делает ее активной
func (h *Handler) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	invitationID, ok := h.decodeInvitationID(w, r)
	if !ok {
		return
	}

	membership, err := h.invitationService.AcceptInvitation(r.Context(), p, invitationID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.setCookie(w, companyCookie, membership.CompanyID, h.cookies.TokenTTL)
	writeJSON(w, http.StatusOK, domainMembershipToHTTP(membership))
}

func (h *Handler) RejectInvitation(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	invitationID, ok := h.decodeInvitationID(w, r)
	if !ok {
		return
	}

	if err := h.invitationService.RejectInvitation(r.Context(), p, invitationID); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "invitation rejected"})
}
