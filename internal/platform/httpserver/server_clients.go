package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	clienterrors "pressboard/contexts/editorial/client-service/domain/errors"
	clienthttp "pressboard/contexts/editorial/client-service/transport/http"
)

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req clienthttp.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeClientError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Clients.Handler.CreateClientHandler(r.Context(), req)
	if err != nil {
		writeClientDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Clients.Handler.ListClientsHandler(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeClientDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Clients.Handler.GetClientHandler(r.Context(), r.PathValue("client_id"))
	if err != nil {
		writeClientDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var req clienthttp.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeClientError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Clients.Handler.UpdateClientHandler(r.Context(), r.PathValue("client_id"), req)
	if err != nil {
		writeClientDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Clients.Handler.DeleteClientHandler(r.Context(), r.PathValue("client_id"))
	if err != nil {
		writeClientDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeClientDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, clienterrors.ErrClientNotFound):
		writeClientError(w, http.StatusNotFound, "client_not_found", err.Error())
	case errors.Is(err, clienterrors.ErrInvalidClientInput):
		writeClientError(w, http.StatusBadRequest, "invalid_client_input", err.Error())
	default:
		writeClientError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeClientError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, clienthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
