package httpserver

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	fileerrors "pressboard/contexts/collaboration/file-service/domain/errors"
	filehttp "pressboard/contexts/collaboration/file-service/transport/http"
)

// multipart form memory ceiling; bigger parts spill to temp files.
const maxUploadFormMemory = 32 << 20

func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadFormMemory); err != nil {
		writeFileError(w, http.StatusBadRequest, "invalid_multipart", "request body must be multipart form data with a file part")
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		writeFileError(w, http.StatusBadRequest, "missing_file", "multipart form must carry a file part")
		return
	}
	defer part.Close()

	content, err := io.ReadAll(part)
	if err != nil {
		writeFileError(w, http.StatusBadRequest, "unreadable_file", "could not read uploaded file")
		return
	}

	resp, err := s.modules.Files.Handler.UploadFileHandler(r.Context(), r.PathValue("task_id"), header.Filename, content)
	if err != nil {
		writeFileDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Files.Handler.ListFilesHandler(r.Context(), r.PathValue("task_id"))
	if err != nil {
		writeFileDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDownloadFile(w http.ResponseWriter, r *http.Request) {
	record, content, err := s.modules.Files.Handler.DownloadFileHandler(r.Context(), r.PathValue("file_id"))
	if err != nil {
		writeFileDomainError(w, err)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": record.Filename})
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Files.Handler.DeleteFileHandler(r.Context(), r.PathValue("file_id"))
	if err != nil {
		writeFileDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeFileDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fileerrors.ErrFileNotFound):
		writeFileError(w, http.StatusNotFound, "file_not_found", err.Error())
	case errors.Is(err, fileerrors.ErrFileTooLarge):
		writeFileError(w, http.StatusRequestEntityTooLarge, "file_too_large", err.Error())
	case errors.Is(err, fileerrors.ErrInvalidFileInput):
		writeFileError(w, http.StatusBadRequest, "invalid_file_input", err.Error())
	default:
		writeFileError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeFileError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, filehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
