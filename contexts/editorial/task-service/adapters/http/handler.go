package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pressboard/contexts/editorial/task-service/application/commands"
	"pressboard/contexts/editorial/task-service/application/queries"
	"pressboard/contexts/editorial/task-service/domain/entities"
	domainerrors "pressboard/contexts/editorial/task-service/domain/errors"
	httptransport "pressboard/contexts/editorial/task-service/transport/http"
)

const dateLayout = "2006-01-02"

type Handler struct {
	CreateTask   commands.CreateTaskUseCase
	UpdateTask   commands.UpdateTaskUseCase
	DeleteTask   commands.DeleteTaskUseCase
	ChangeStatus commands.ChangeStatusUseCase
	TakeTask     commands.TakeTaskUseCase
	Undo         commands.UndoUseCase
	GetTask      queries.GetTaskUseCase
	ListTasks    queries.ListTasksUseCase
	ListHistory  queries.ListHistoryUseCase
	Logger       *slog.Logger
}

func (h Handler) CreateTaskHandler(ctx context.Context, userID string, req httptransport.CreateTaskRequest) (httptransport.TaskResponse, error) {
	_ = userID
	task, err := h.CreateTask.Execute(ctx, commands.CreateTaskCommand{
		ClientID:       req.ClientID,
		OutletID:       req.OutletID,
		AuthorID:       req.AuthorID,
		EditorID:       req.EditorID,
		ManagerID:      req.ManagerID,
		Title:          req.Title,
		Description:    req.Description,
		TaskType:       entities.TaskType(req.TaskType),
		Language:       req.Language,
		GoogleDocURL:   req.GoogleDocURL,
		GoogleFormsURL: req.GoogleFormsURL,
	})
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	return httptransport.TaskResponse{Task: mapTask(task)}, nil
}

func (h Handler) UpdateTaskHandler(ctx context.Context, taskID string, req httptransport.UpdateTaskRequest) (httptransport.TaskResponse, error) {
	publicationDate, err := parseOptionalDate(req.PublicationDate)
	if err != nil {
		return httptransport.TaskResponse{}, domainerrors.ErrInvalidTaskInput
	}
	var taskType *entities.TaskType
	if req.TaskType != nil {
		value := entities.TaskType(*req.TaskType)
		taskType = &value
	}
	task, err := h.UpdateTask.Execute(ctx, commands.UpdateTaskCommand{
		TaskID:          taskID,
		ClientID:        req.ClientID,
		OutletID:        req.OutletID,
		AuthorID:        req.AuthorID,
		EditorID:        req.EditorID,
		ManagerID:       req.ManagerID,
		Title:           req.Title,
		Description:     req.Description,
		TaskType:        taskType,
		Language:        req.Language,
		GoogleDocURL:    req.GoogleDocURL,
		GoogleFormsURL:  req.GoogleFormsURL,
		PublicationURL:  req.PublicationURL,
		PublicationDate: publicationDate,
		ClientGratitude: req.ClientGratitude,
		SentToWhom:      req.SentToWhom,
		SentMethod:      req.SentMethod,
	})
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	return httptransport.TaskResponse{Task: mapTask(task)}, nil
}

func (h Handler) DeleteTaskHandler(ctx context.Context, taskID string) (httptransport.DeleteTaskResponse, error) {
	if err := h.DeleteTask.Execute(ctx, commands.DeleteTaskCommand{TaskID: taskID}); err != nil {
		return httptransport.DeleteTaskResponse{}, err
	}
	return httptransport.DeleteTaskResponse{OK: true}, nil
}

func (h Handler) ChangeStatusHandler(ctx context.Context, userID string, taskID string, req httptransport.ChangeStatusRequest) (httptransport.TaskResponse, error) {
	resumeDate, err := parseOptionalDate(optional(req.PostponeResumeDate))
	if err != nil {
		return httptransport.TaskResponse{}, domainerrors.ErrInvalidTaskInput
	}
	task, err := h.ChangeStatus.Execute(ctx, commands.ChangeStatusCommand{
		TaskID:             taskID,
		ActorID:            userID,
		ToStatus:           entities.TaskStatus(strings.TrimSpace(req.Status)),
		Comment:            req.Comment,
		PostponeReason:     req.PostponeReason,
		PostponeResumeDate: resumeDate,
	})
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	return httptransport.TaskResponse{Task: mapTask(task)}, nil
}

func (h Handler) TakeTaskHandler(ctx context.Context, userID string, taskID string) (httptransport.TaskResponse, error) {
	task, err := h.TakeTask.Execute(ctx, commands.TakeTaskCommand{TaskID: taskID, ActorID: userID})
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	return httptransport.TaskResponse{Task: mapTask(task)}, nil
}

func (h Handler) UndoHandler(ctx context.Context, taskID string) (httptransport.TaskResponse, error) {
	task, err := h.Undo.Execute(ctx, commands.UndoCommand{TaskID: taskID})
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	return httptransport.TaskResponse{Task: mapTask(task)}, nil
}

func (h Handler) GetTaskHandler(ctx context.Context, taskID string) (httptransport.TaskResponse, error) {
	task, err := h.GetTask.Execute(ctx, taskID)
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	return httptransport.TaskResponse{Task: mapTask(task)}, nil
}

func (h Handler) ListTasksHandler(ctx context.Context, query queries.ListTasksQuery) (httptransport.ListTasksResponse, error) {
	items, err := h.ListTasks.Execute(ctx, query)
	if err != nil {
		return httptransport.ListTasksResponse{}, err
	}
	result := make([]httptransport.TaskDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapTask(item))
	}
	return httptransport.ListTasksResponse{Items: result}, nil
}

func (h Handler) ListHistoryHandler(ctx context.Context, taskID string) (httptransport.ListHistoryResponse, error) {
	items, err := h.ListHistory.Execute(ctx, taskID)
	if err != nil {
		return httptransport.ListHistoryResponse{}, err
	}
	result := make([]httptransport.HistoryEntryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, httptransport.HistoryEntryDTO{
			EntryID:    item.EntryID,
			TaskID:     item.TaskID,
			UserID:     item.UserID,
			FromStatus: string(item.FromStatus),
			ToStatus:   string(item.ToStatus),
			Comment:    item.Comment,
			Iteration:  item.Iteration,
			CreatedAt:  item.CreatedAt.Format(time.RFC3339),
		})
	}
	return httptransport.ListHistoryResponse{Items: result}, nil
}

func mapTask(task entities.Task) httptransport.TaskDTO {
	return httptransport.TaskDTO{
		TaskID:             task.TaskID,
		ClientID:           task.ClientID,
		OutletID:           task.OutletID,
		AuthorID:           task.AuthorID,
		EditorID:           task.EditorID,
		ManagerID:          task.ManagerID,
		Title:              task.Title,
		Description:        task.Description,
		TaskType:           string(task.TaskType),
		Language:           task.Language,
		Status:             string(task.Status),
		GoogleDocURL:       task.GoogleDocURL,
		GoogleFormsURL:     task.GoogleFormsURL,
		Iteration:          task.Iteration,
		StatusChangedAt:    task.StatusChangedAt.Format(time.RFC3339),
		CreatedAt:          task.CreatedAt.Format(time.RFC3339),
		PostponeReason:     task.PostponeReason,
		PostponeResumeDate: formatOptionalDate(task.PostponeResumeDate),
		PublicationURL:     task.PublicationURL,
		PublicationDate:    formatOptionalDate(task.PublicationDate),
		ClientGratitude:    task.ClientGratitude,
		SentToWhom:         task.SentToWhom,
		SentMethod:         task.SentMethod,
	}
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatOptionalDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(dateLayout)
}

func optional(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
