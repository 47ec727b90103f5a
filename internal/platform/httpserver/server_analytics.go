package httpserver

import (
	"errors"
	"net/http"

	analyticserrors "pressboard/contexts/editorial/analytics-service/domain/errors"
	"pressboard/contexts/editorial/analytics-service/ports"
	analyticshttp "pressboard/contexts/editorial/analytics-service/transport/http"
)

const defaultAnalyticsPeriod = "month"

func (s *Server) handleAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := ports.StatFilter{
		AuthorID:  query.Get("author_id"),
		EditorID:  query.Get("editor_id"),
		ManagerID: query.Get("manager_id"),
		ClientID:  query.Get("client_id"),
		OutletID:  query.Get("media_id"),
	}

	resp, err := s.modules.Analytics.Handler.SummaryHandler(r.Context(), analyticsPeriod(r), filter)
	if err != nil {
		writeAnalyticsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnalyticsStages(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Analytics.Handler.StagesHandler(r.Context(), analyticsPeriod(r))
	if err != nil {
		writeAnalyticsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnalyticsPublications(w http.ResponseWriter, r *http.Request) {
	comparePeriod := r.URL.Query().Get("compare_period")

	resp, err := s.modules.Analytics.Handler.PublicationsHandler(r.Context(), analyticsPeriod(r), comparePeriod)
	if err != nil {
		writeAnalyticsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func analyticsPeriod(r *http.Request) string {
	period := r.URL.Query().Get("period")
	if period == "" {
		return defaultAnalyticsPeriod
	}
	return period
}

func writeAnalyticsDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analyticserrors.ErrInvalidPeriod):
		writeAnalyticsError(w, http.StatusBadRequest, "invalid_period", err.Error())
	default:
		writeAnalyticsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAnalyticsError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, analyticshttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
