package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/go-chi/chi/v5"
)

// parseTaskFilter читает параметры списка задач из query string
func parseTaskFilter(q url.Values) (domain.TaskFilter, error) {
	filter := domain.TaskFilter{
		PersonalOnly: q.Get("personalOnly") == "true",
		PublicOnly:   q.Get("publicOnly") == "true",
		AssignedToMe: q.Get("assignedToMe") == "true",
		Search:       q.Get("search"),
	}

	if companyID := q.Get("companyId"); companyID != "" {
		filter.CompanyID = &companyID
	}
	if status := q.Get("status"); status != "" {
		s := domain.TaskStatus(status)
		filter.Status = &s
	}
	if priority := q.Get("priority"); priority != "" {
		p := domain.TaskPriority(priority)
		filter.Priority = &p
	}

	var err error
	if filter.Page, err = parseIntParam(q, "page"); err != nil {
		return filter, err
	}
	if filter.PageSize, err = parseIntParam(q, "limit"); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseIntParam(q url.Values, name string) (int, error) {
	value := q.Get(name)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.NewValidationError("%s must be a number", name)
	}
	return n, nil
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
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

	page, err := h.taskService.ListVisibleTasks(r.Context(), p, filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskPageToHTTP(page))
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), p, httpCreateTaskToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTaskToHTTP(task))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), p, chi.URLParam(r, "id"), httpUpdateTaskToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AssignUsers(w http.ResponseWriter, r *http.Request) {
	p, err := principalFrom(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req AssignUsersRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.AssignUsers(r.Context(), p, chi.URLParam(r, "id"), req.UserIDs)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) UnassignUser(w http.ResponseWriter, r *http.Request) {
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

	task, err := h.taskService.UnassignUser(r.Context(), p, chi.URLParam(r, "id"), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}
