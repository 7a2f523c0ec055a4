package handler

import (
	"net/http"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	members, err := h.teamService.ListMembers(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMembersToHTTP(members))
}

func (h *Handler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.UserID == "" {
		h.handleError(w, r, domain.NewValidationError("userId is required"))
		return
	}

	if err := h.teamService.UpdateMemberRole(r.Context(), p, req.UserID, domain.Role(req.Role)); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "role updated"})
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		h.handleError(w, r, domain.NewValidationError("userId parameter is required"))
		return
	}

	if err := h.teamService.RemoveMember(r.Context(), p, userID); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "member removed"})
}

func (h *Handler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req TransferOwnershipRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.NewOwnerID == "" {
		h.handleError(w, r, domain.NewValidationError("newOwnerId is required"))
		return
	}

	if err := h.teamService.TransferOwnership(r.Context(), p, req.NewOwnerID); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "ownership transferred"})
}
