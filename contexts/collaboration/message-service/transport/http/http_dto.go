package httptransport

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MessageDTO struct {
	MessageID string `json:"message_id"`
	TaskID    string `json:"task_id"`
	UserID    string `json:"user_id"`
	Text      string `json:"text"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

type MessageResponse struct {
	Message MessageDTO `json:"message"`
}

type ListMessagesResponse struct {
	Messages []MessageDTO `json:"messages"`
}

type MarkReadResponse struct {
	OK bool `json:"ok"`
}

type UnreadCountResponse struct {
	Unread int `json:"unread"`
}
