package httptransport

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type FileDTO struct {
	FileID     string `json:"file_id"`
	TaskID     string `json:"task_id"`
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploaded_at"`
}

type FileResponse struct {
	File FileDTO `json:"file"`
}

type ListFilesResponse struct {
	Files []FileDTO `json:"files"`
}

type DeleteFileResponse struct {
	OK bool `json:"ok"`
}
