package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"pressboard/contexts/editorial/analytics-service/adapters/memory"
	domainerrors "pressboard/contexts/editorial/analytics-service/domain/errors"
	"pressboard/contexts/editorial/analytics-service/ports"
)

var frozen = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newService(seed []ports.TaskStat) Service {
	store := memory.NewStore(seed)
	store.SetNow(func() time.Time { return frozen })
	return Service{Stats: store, Clock: store}
}

func TestSummaryCountsWIPOverdueAndPublished(t *testing.T) {
	service := newService([]ports.TaskStat{
		{TaskID: "a", Status: ports.StatusInProgress, StatusChangedAt: frozen.Add(-time.Hour)},
		{TaskID: "b", Status: ports.StatusEditorReview, StatusChangedAt: frozen.Add(-4 * 24 * time.Hour)},
		{TaskID: "c", Status: ports.StatusPublished, StatusChangedAt: frozen.Add(-10 * 24 * time.Hour)},
		{TaskID: "d", Status: ports.StatusPublished, StatusChangedAt: frozen.Add(-400 * 24 * time.Hour)},
		{TaskID: "e", Status: ports.StatusPostponed, StatusChangedAt: frozen.Add(-30 * 24 * time.Hour)},
	})

	report, err := service.Summary(context.Background(), "month", ports.StatFilter{})
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if report.WIP != 2 {
		t.Fatalf("expected 2 WIP, got %d", report.WIP)
	}
	if report.Overdue != 1 {
		t.Fatalf("expected 1 overdue, got %d", report.Overdue)
	}
	if report.EditorReview != 1 {
		t.Fatalf("expected 1 in editor review, got %d", report.EditorReview)
	}
	if report.Published != 1 {
		t.Fatalf("expected 1 published in period, got %d", report.Published)
	}
}

func TestSummaryFilterByAuthor(t *testing.T) {
	service := newService([]ports.TaskStat{
		{TaskID: "a", Status: ports.StatusInProgress, StatusChangedAt: frozen, AuthorID: "u1"},
		{TaskID: "b", Status: ports.StatusInProgress, StatusChangedAt: frozen, AuthorID: "u2"},
	})

	report, err := service.Summary(context.Background(), "month", ports.StatFilter{AuthorID: "u1"})
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if report.WIP != 1 {
		t.Fatalf("filter ignored, WIP=%d", report.WIP)
	}
}

func TestSummaryRejectsUnknownPeriod(t *testing.T) {
	service := newService(nil)

	_, err := service.Summary(context.Background(), "week", ports.StatFilter{})
	if !errors.Is(err, domainerrors.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestStagesCoverEveryStatus(t *testing.T) {
	service := newService([]ports.TaskStat{
		{TaskID: "a", Status: ports.StatusNew, StatusChangedAt: frozen.Add(-time.Hour)},
		{TaskID: "b", Status: ports.StatusNew, StatusChangedAt: frozen.Add(-5 * 24 * time.Hour)},
	})

	report, err := service.Stages(context.Background(), "month")
	if err != nil {
		t.Fatalf("stages failed: %v", err)
	}
	if len(report.Stages) != len(ports.AllStatuses) {
		t.Fatalf("missing stages: %+v", report.Stages)
	}
	if report.Stages[ports.StatusNew] != 2 {
		t.Fatalf("expected 2 new, got %d", report.Stages[ports.StatusNew])
	}
	if report.StagesNoDelayPercent[ports.StatusNew] != 50 {
		t.Fatalf("expected 50%% on time, got %v", report.StagesNoDelayPercent[ports.StatusNew])
	}
	// Empty stages count as fully on time.
	if report.StagesNoDelayPercent[ports.StatusPublished] != 100 {
		t.Fatalf("empty stage should be 100%%, got %v", report.StagesNoDelayPercent[ports.StatusPublished])
	}
}

func TestPublicationsPerDayWithCompare(t *testing.T) {
	service := newService([]ports.TaskStat{
		{TaskID: "a", Status: ports.StatusPublished, StatusChangedAt: frozen.Add(-2 * 24 * time.Hour)},
		{TaskID: "b", Status: ports.StatusPublished, StatusChangedAt: frozen.Add(-2 * 24 * time.Hour)},
		{TaskID: "c", Status: ports.StatusPublished, StatusChangedAt: frozen.Add(-10 * 24 * time.Hour)},
		{TaskID: "d", Status: ports.StatusPublished, StatusChangedAt: frozen.Add(-45 * 24 * time.Hour)},
		{TaskID: "e", Status: ports.StatusInProgress, StatusChangedAt: frozen},
	})

	report, err := service.Publications(context.Background(), "month", "month")
	if err != nil {
		t.Fatalf("publications failed: %v", err)
	}
	if len(report.Publications) != 2 {
		t.Fatalf("expected 2 distinct days, got %+v", report.Publications)
	}
	if report.Publications[0].Date >= report.Publications[1].Date {
		t.Fatalf("days not ascending: %+v", report.Publications)
	}
	var total int
	for _, day := range report.Publications {
		total += day.Count
	}
	if total != 3 {
		t.Fatalf("expected 3 publications in period, got %d", total)
	}
	if report.ComparePeriod != "month" || len(report.ComparePublications) != 1 {
		t.Fatalf("compare window wrong: %+v", report.ComparePublications)
	}
}
