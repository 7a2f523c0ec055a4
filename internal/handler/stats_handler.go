package handler

import (
	"net/http"
)

// GetTaskStats - сводка по тем же задачам, что вернул бы ListTasks с этими фильтрами
func (h *Handler) GetTaskStats(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	filter, err := parseTaskFilter(r.URL.Query())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	stats, err := h.statsService.TaskStats(r.Context(), p, filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainStatsToHTTP(stats))
}
