package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"pressboard/contexts/editorial/task-service/application/queries"
	taskerrors "pressboard/contexts/editorial/task-service/domain/errors"
	taskhttp "pressboard/contexts/editorial/task-service/transport/http"
)

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeTaskError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req taskhttp.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTaskError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Tasks.Handler.CreateTaskHandler(r.Context(), userID, req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.modules.Tasks.Handler.ListTasksHandler(r.Context(), queries.ListTasksQuery{
		Status:    query.Get("status"),
		AuthorID:  query.Get("author_id"),
		EditorID:  query.Get("editor_id"),
		ManagerID: query.Get("manager_id"),
		ClientID:  query.Get("client_id"),
		OutletID:  query.Get("media_id"),
		Search:    query.Get("search"),
	})
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Tasks.Handler.GetTaskHandler(r.Context(), r.PathValue("task_id"))
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskhttp.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTaskError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Tasks.Handler.UpdateTaskHandler(r.Context(), r.PathValue("task_id"), req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Tasks.Handler.DeleteTaskHandler(r.Context(), r.PathValue("task_id"))
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeTaskError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req taskhttp.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTaskError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Tasks.Handler.ChangeStatusHandler(r.Context(), userID, r.PathValue("task_id"), req)
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTakeTask(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeTaskError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.modules.Tasks.Handler.TakeTaskHandler(r.Context(), userID, r.PathValue("task_id"))
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Tasks.Handler.UndoHandler(r.Context(), r.PathValue("task_id"))
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Tasks.Handler.ListHistoryHandler(r.Context(), r.PathValue("task_id"))
	if err != nil {
		writeTaskDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeTaskDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, taskerrors.ErrTaskNotFound):
		writeTaskError(w, http.StatusNotFound, "task_not_found", err.Error())
	case errors.Is(err, taskerrors.ErrInvalidTaskInput):
		writeTaskError(w, http.StatusBadRequest, "invalid_task_input", err.Error())
	case errors.Is(err, taskerrors.ErrInvalidStatus):
		writeTaskError(w, http.StatusBadRequest, "invalid_status", err.Error())
	case errors.Is(err, taskerrors.ErrCommentRequired):
		writeTaskError(w, http.StatusUnprocessableEntity, "comment_required", err.Error())
	case errors.Is(err, taskerrors.ErrTaskNotTakeable):
		writeTaskError(w, http.StatusConflict, "task_not_takeable", err.Error())
	case errors.Is(err, taskerrors.ErrNoUndoAvailable):
		writeTaskError(w, http.StatusConflict, "no_undo_available", err.Error())
	default:
		writeTaskError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeTaskError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, taskhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
