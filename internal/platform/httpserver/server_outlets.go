package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	outleterrors "pressboard/contexts/editorial/outlet-service/domain/errors"
	outlethttp "pressboard/contexts/editorial/outlet-service/transport/http"
)

func (s *Server) handleCreateOutlet(w http.ResponseWriter, r *http.Request) {
	var req outlethttp.CreateOutletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOutletError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Outlets.Handler.CreateOutletHandler(r.Context(), req)
	if err != nil {
		writeOutletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListOutlets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.modules.Outlets.Handler.ListOutletsHandler(
		r.Context(),
		query.Get("search"),
		query.Get("category"),
		query.Get("language"),
	)
	if err != nil {
		writeOutletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOutlet(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Outlets.Handler.GetOutletHandler(r.Context(), r.PathValue("outlet_id"))
	if err != nil {
		writeOutletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateOutlet(w http.ResponseWriter, r *http.Request) {
	var req outlethttp.UpdateOutletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOutletError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.modules.Outlets.Handler.UpdateOutletHandler(r.Context(), r.PathValue("outlet_id"), req)
	if err != nil {
		writeOutletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteOutlet(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Outlets.Handler.DeleteOutletHandler(r.Context(), r.PathValue("outlet_id"))
	if err != nil {
		writeOutletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeOutletDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, outleterrors.ErrOutletNotFound):
		writeOutletError(w, http.StatusNotFound, "outlet_not_found", err.Error())
	case errors.Is(err, outleterrors.ErrInvalidOutletInput):
		writeOutletError(w, http.StatusBadRequest, "invalid_outlet_input", err.Error())
	default:
		writeOutletError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeOutletError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, outlethttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
