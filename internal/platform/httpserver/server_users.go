package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	usererrors "pressboard/contexts/identity/user-service/domain/errors"
	userhttp "pressboard/contexts/identity/user-service/transport/http"
)

func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req userhttp.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Users.Handler.RegisterUserHandler(r.Context(), req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Users.Handler.ListUsersHandler(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Users.Handler.GetUserHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("X-User-Id")
	if actorID == "" {
		writeUserError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req userhttp.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Users.Handler.UpdateUserHandler(r.Context(), actorID, r.PathValue("user_id"), req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeUserDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usererrors.ErrUserNotFound):
		writeUserError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, usererrors.ErrInvalidUserInput):
		writeUserError(w, http.StatusBadRequest, "invalid_user_input", err.Error())
	case errors.Is(err, usererrors.ErrEmailTaken):
		writeUserError(w, http.StatusConflict, "email_taken", err.Error())
	case errors.Is(err, usererrors.ErrForbidden):
		writeUserError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeUserError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeUserError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, userhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
