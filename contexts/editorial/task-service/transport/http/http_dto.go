package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TaskDTO struct {
	TaskID    string `json:"task_id"`
	ClientID  string `json:"client_id"`
	OutletID  string `json:"outlet_id,omitempty"`
	AuthorID  string `json:"author_id,omitempty"`
	EditorID  string `json:"editor_id,omitempty"`
	ManagerID string `json:"manager_id,omitempty"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TaskType    string `json:"task_type"`
	Language    string `json:"language"`
	Status      string `json:"status"`

	GoogleDocURL   string `json:"google_doc_url,omitempty"`
	GoogleFormsURL string `json:"google_forms_url,omitempty"`

	Iteration       int    `json:"iteration"`
	StatusChangedAt string `json:"status_changed_at"`
	CreatedAt       string `json:"created_at"`

	PostponeReason     string `json:"postpone_reason,omitempty"`
	PostponeResumeDate string `json:"postpone_resume_date,omitempty"`

	PublicationURL  string `json:"publication_url,omitempty"`
	PublicationDate string `json:"publication_date,omitempty"`
	ClientGratitude string `json:"client_gratitude,omitempty"`

	SentToWhom string `json:"sent_to_whom,omitempty"`
	SentMethod string `json:"sent_method,omitempty"`
}

type HistoryEntryDTO struct {
	EntryID    string `json:"entry_id"`
	TaskID     string `json:"task_id"`
	UserID     string `json:"user_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Comment    string `json:"comment,omitempty"`
	Iteration  int    `json:"iteration"`
	CreatedAt  string `json:"created_at"`
}

type CreateTaskRequest struct {
	ClientID    string `json:"client_id"`
	OutletID    string `json:"outlet_id"`
	AuthorID    string `json:"author_id"`
	EditorID    string `json:"editor_id"`
	ManagerID   string `json:"manager_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TaskType    string `json:"task_type"`
	Language    string `json:"language"`

	GoogleDocURL   string `json:"google_doc_url"`
	GoogleFormsURL string `json:"google_forms_url"`
}

type UpdateTaskRequest struct {
	ClientID    *string `json:"client_id"`
	OutletID    *string `json:"outlet_id"`
	AuthorID    *string `json:"author_id"`
	EditorID    *string `json:"editor_id"`
	ManagerID   *string `json:"manager_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TaskType    *string `json:"task_type"`
	Language    *string `json:"language"`

	GoogleDocURL   *string `json:"google_doc_url"`
	GoogleFormsURL *string `json:"google_forms_url"`

	PublicationURL  *string `json:"publication_url"`
	PublicationDate *string `json:"publication_date"`
	ClientGratitude *string `json:"client_gratitude"`
	SentToWhom      *string `json:"sent_to_whom"`
	SentMethod      *string `json:"sent_method"`
}

type ChangeStatusRequest struct {
	Status             string `json:"status"`
	Comment            string `json:"comment"`
	PostponeReason     string `json:"postpone_reason"`
	PostponeResumeDate string `json:"postpone_resume_date"`
}

type TaskResponse struct {
	Task TaskDTO `json:"task"`
}

type ListTasksResponse struct {
	Items []TaskDTO `json:"items"`
}

type ListHistoryResponse struct {
	Items []HistoryEntryDTO `json:"items"`
}

type DeleteTaskResponse struct {
	OK bool `json:"ok"`
}
