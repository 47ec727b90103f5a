package httptransport

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ClientDTO struct {
	ClientID         string `json:"client_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	AvatarURL        string `json:"avatar_url,omitempty"`
	Company          string `json:"company,omitempty"`
	Position         string `json:"position,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
	TelegramUsername string `json:"telegram_username,omitempty"`
	LawyerName       string `json:"lawyer_name,omitempty"`
	LawyerContact    string `json:"lawyer_contact,omitempty"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type CreateClientRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	AvatarURL        string `json:"avatar_url"`
	Company          string `json:"company"`
	Position         string `json:"position"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	TelegramUsername string `json:"telegram_username"`
	LawyerName       string `json:"lawyer_name"`
	LawyerContact    string `json:"lawyer_contact"`
}

type UpdateClientRequest struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	AvatarURL        *string `json:"avatar_url"`
	Company          *string `json:"company"`
	Position         *string `json:"position"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	TelegramUsername *string `json:"telegram_username"`
	LawyerName       *string `json:"lawyer_name"`
	LawyerContact    *string `json:"lawyer_contact"`
}

type ClientResponse struct {
	Client ClientDTO `json:"client"`
}

type ListClientsResponse struct {
	Clients []ClientDTO `json:"clients"`
}

type DeleteClientResponse struct {
	OK bool `json:"ok"`
}
