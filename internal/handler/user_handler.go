package handler

import "net/http"

// ListUsers возвращает участников активной компании, а без нее только самого пользователя
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if p.HasCompanyContext() {
		members, err := h.teamService.ListMembers(r.Context(), p)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, domainMembersToTeamUsers(members))
		return
	}

	user, err := h.authService.Me(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, []TeamUserResponse{{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}})
}
