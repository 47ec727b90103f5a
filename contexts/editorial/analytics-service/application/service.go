package application

import (
	"context"
	"log/slog"
	"sort"
	"time"

	domainerrors "pressboard/contexts/editorial/analytics-service/domain/errors"
	"pressboard/contexts/editorial/analytics-service/ports"
)

// Tasks sitting in one stage longer than this are counted overdue.
const overdueThreshold = 3 * 24 * time.Hour

var periodSpans = map[string]time.Duration{
	"month":     30 * 24 * time.Hour,
	"quarter":   90 * 24 * time.Hour,
	"half_year": 180 * 24 * time.Hour,
	"year":      365 * 24 * time.Hour,
}

type Service struct {
	Stats  ports.StatsRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

type SummaryReport struct {
	Period       string
	WIP          int
	Overdue      int
	EditorReview int
	Published    int
}

type StagesReport struct {
	Period               string
	Stages               map[string]int
	StagesNoDelayPercent map[string]float64
}

type DailyCount struct {
	Date  string
	Count int
}

type PublicationsReport struct {
	Period              string
	Publications        []DailyCount
	ComparePeriod       string
	ComparePublications []DailyCount
}

func (s Service) Summary(ctx context.Context, period string, filter ports.StatFilter) (SummaryReport, error) {
	span, ok := periodSpans[period]
	if !ok {
		return SummaryReport{}, domainerrors.ErrInvalidPeriod
	}

	stats, err := s.Stats.ListStats(ctx, filter)
	if err != nil {
		return SummaryReport{}, err
	}

	now := s.now()
	start := now.Add(-span)
	report := SummaryReport{Period: period}
	for _, stat := range stats {
		if isWIP(stat.Status) {
			report.WIP++
			if now.Sub(stat.StatusChangedAt) > overdueThreshold {
				report.Overdue++
			}
		}
		if stat.Status == ports.StatusEditorReview {
			report.EditorReview++
		}
		if stat.Status == ports.StatusPublished && !stat.StatusChangedAt.Before(start) && !stat.StatusChangedAt.After(now) {
			report.Published++
		}
	}
	return report, nil
}

func (s Service) Stages(ctx context.Context, period string) (StagesReport, error) {
	if _, ok := periodSpans[period]; !ok {
		return StagesReport{}, domainerrors.ErrInvalidPeriod
	}

	stats, err := s.Stats.ListStats(ctx, ports.StatFilter{})
	if err != nil {
		return StagesReport{}, err
	}

	now := s.now()
	report := StagesReport{
		Period:               period,
		Stages:               make(map[string]int, len(ports.AllStatuses)),
		StagesNoDelayPercent: make(map[string]float64, len(ports.AllStatuses)),
	}
	onTime := make(map[string]int, len(ports.AllStatuses))
	for _, status := range ports.AllStatuses {
		report.Stages[status] = 0
	}
	for _, stat := range stats {
		report.Stages[stat.Status]++
		if now.Sub(stat.StatusChangedAt) <= overdueThreshold {
			onTime[stat.Status]++
		}
	}
	for _, status := range ports.AllStatuses {
		total := report.Stages[status]
		if total == 0 {
			report.StagesNoDelayPercent[status] = 100
			continue
		}
		report.StagesNoDelayPercent[status] = float64(onTime[status]) / float64(total) * 100
	}
	return report, nil
}

func (s Service) Publications(ctx context.Context, period, comparePeriod string) (PublicationsReport, error) {
	span, ok := periodSpans[period]
	if !ok {
		return PublicationsReport{}, domainerrors.ErrInvalidPeriod
	}
	var compareSpan time.Duration
	if comparePeriod != "" {
		compareSpan, ok = periodSpans[comparePeriod]
		if !ok {
			return PublicationsReport{}, domainerrors.ErrInvalidPeriod
		}
	}

	stats, err := s.Stats.ListStats(ctx, ports.StatFilter{})
	if err != nil {
		return PublicationsReport{}, err
	}

	now := s.now()
	start := now.Add(-span)
	report := PublicationsReport{
		Period:       period,
		Publications: countPerDay(stats, start, now),
	}
	if comparePeriod != "" {
		report.ComparePeriod = comparePeriod
		report.ComparePublications = countPerDay(stats, start.Add(-compareSpan), start)
	}
	return report, nil
}

func countPerDay(stats []ports.TaskStat, start, end time.Time) []DailyCount {
	perDay := make(map[string]int)
	for _, stat := range stats {
		if stat.Status != ports.StatusPublished {
			continue
		}
		if stat.StatusChangedAt.Before(start) || stat.StatusChangedAt.After(end) {
			continue
		}
		perDay[stat.StatusChangedAt.UTC().Format("2006-01-02")]++
	}
	days := make([]DailyCount, 0, len(perDay))
	for date, count := range perDay {
		days = append(days, DailyCount{Date: date, Count: count})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

func isWIP(status string) bool {
	for _, wip := range ports.WIPStatuses {
		if status == wip {
			return true
		}
	}
	return false
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
