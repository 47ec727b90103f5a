package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	messageerrors "pressboard/contexts/collaboration/message-service/domain/errors"
	messagehttp "pressboard/contexts/collaboration/message-service/transport/http"
)

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Messages.Handler.ListMessagesHandler(r.Context(), r.PathValue("task_id"))
	if err != nil {
		writeMessageDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("X-User-Id")
	if actorID == "" {
		writeMessageError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req messagehttp.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessageError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Messages.Handler.PostMessageHandler(r.Context(), r.PathValue("task_id"), actorID, req)
	if err != nil {
		writeMessageDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleMarkMessagesRead(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("X-User-Id")
	if actorID == "" {
		writeMessageError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.modules.Messages.Handler.MarkReadHandler(r.Context(), r.PathValue("task_id"), actorID)
	if err != nil {
		writeMessageDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("X-User-Id")
	if actorID == "" {
		writeMessageError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.modules.Messages.Handler.UnreadCountHandler(r.Context(), r.PathValue("task_id"), actorID)
	if err != nil {
		writeMessageDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeMessageDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, messageerrors.ErrMessageNotFound):
		writeMessageError(w, http.StatusNotFound, "message_not_found", err.Error())
	case errors.Is(err, messageerrors.ErrInvalidMessageInput):
		writeMessageError(w, http.StatusBadRequest, "invalid_message_input", err.Error())
	default:
		writeMessageError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeMessageError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, messagehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
