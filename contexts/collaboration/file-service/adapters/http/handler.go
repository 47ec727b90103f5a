package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pressboard/contexts/collaboration/file-service/application"
	"pressboard/contexts/collaboration/file-service/ports"
	httptransport "pressboard/contexts/collaboration/file-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) UploadFileHandler(ctx context.Context, taskID, filename string, content []byte) (httptransport.FileResponse, error) {
	record, err := h.Service.UploadFile(ctx, taskID, filename, content)
	if err != nil {
		return httptransport.FileResponse{}, err
	}
	return httptransport.FileResponse{File: mapFile(record)}, nil
}

func (h Handler) ListFilesHandler(ctx context.Context, taskID string) (httptransport.ListFilesResponse, error) {
	items, err := h.Service.ListFiles(ctx, taskID)
	if err != nil {
		return httptransport.ListFilesResponse{}, err
	}
	resp := httptransport.ListFilesResponse{Files: make([]httptransport.FileDTO, 0, len(items))}
	for _, item := range items {
		resp.Files = append(resp.Files, mapFile(item))
	}
	return resp, nil
}

func (h Handler) DownloadFileHandler(ctx context.Context, fileID string) (httptransport.FileDTO, []byte, error) {
	record, content, err := h.Service.DownloadFile(ctx, fileID)
	if err != nil {
		return httptransport.FileDTO{}, nil, err
	}
	return mapFile(record), content, nil
}

func (h Handler) DeleteFileHandler(ctx context.Context, fileID string) (httptransport.DeleteFileResponse, error) {
	if err := h.Service.DeleteFile(ctx, fileID); err != nil {
		return httptransport.DeleteFileResponse{}, err
	}
	return httptransport.DeleteFileResponse{OK: true}, nil
}

func mapFile(record ports.FileRecord) httptransport.FileDTO {
	return httptransport.FileDTO{
		FileID:     record.FileID,
		TaskID:     record.TaskID,
		Filename:   record.Filename,
		Size:       record.Size,
		UploadedAt: record.UploadedAt.UTC().Format(time.RFC3339),
	}
}
