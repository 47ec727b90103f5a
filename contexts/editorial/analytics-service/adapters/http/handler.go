package httpadapter

import (
	"context"
	"log/slog"

	"pressboard/contexts/editorial/analytics-service/application"
	"pressboard/contexts/editorial/analytics-service/ports"
	httptransport "pressboard/contexts/editorial/analytics-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SummaryHandler(ctx context.Context, period string, filter ports.StatFilter) (httptransport.SummaryResponse, error) {
	report, err := h.Service.Summary(ctx, period, filter)
	if err != nil {
		return httptransport.SummaryResponse{}, err
	}
	return httptransport.SummaryResponse{
		Period:       report.Period,
		WIP:          report.WIP,
		Overdue:      report.Overdue,
		EditorReview: report.EditorReview,
		Published:    report.Published,
	}, nil
}

func (h Handler) StagesHandler(ctx context.Context, period string) (httptransport.StagesResponse, error) {
	report, err := h.Service.Stages(ctx, period)
	if err != nil {
		return httptransport.StagesResponse{}, err
	}
	return httptransport.StagesResponse{
		Period:               report.Period,
		Stages:               report.Stages,
		StagesNoDelayPercent: report.StagesNoDelayPercent,
	}, nil
}

func (h Handler) PublicationsHandler(ctx context.Context, period, comparePeriod string) (httptransport.PublicationsResponse, error) {
	report, err := h.Service.Publications(ctx, period, comparePeriod)
	if err != nil {
		return httptransport.PublicationsResponse{}, err
	}
	resp := httptransport.PublicationsResponse{
		Period:        report.Period,
		Publications:  mapDailyCounts(report.Publications),
		ComparePeriod: report.ComparePeriod,
	}
	if report.ComparePeriod != "" {
		resp.ComparePublications = mapDailyCounts(report.ComparePublications)
	}
	return resp, nil
}

func mapDailyCounts(days []application.DailyCount) []httptransport.DailyCountDTO {
	items := make([]httptransport.DailyCountDTO, 0, len(days))
	for _, day := range days {
		items = append(items, httptransport.DailyCountDTO{Date: day.Date, Count: day.Count})
	}
	return items
}
