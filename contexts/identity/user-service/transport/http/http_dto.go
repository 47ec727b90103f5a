package httptransport

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UserDTO struct {
	UserID           string   `json:"user_id"`
	Email            string   `json:"email"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	AvatarURL        string   `json:"avatar_url,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	TelegramUsername string   `json:"telegram_username,omitempty"`
	Topics           []string `json:"topics"`
	Bio              string   `json:"bio,omitempty"`
	Languages        []string `json:"languages"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

type RegisterUserRequest struct {
	Email            string   `json:"email"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	AvatarURL        string   `json:"avatar_url"`
	Phone            string   `json:"phone"`
	TelegramUsername string   `json:"telegram_username"`
	Topics           []string `json:"topics"`
	Bio              string   `json:"bio"`
	Languages        []string `json:"languages"`
}

type UpdateUserRequest struct {
	FirstName        *string  `json:"first_name"`
	LastName         *string  `json:"last_name"`
	AvatarURL        *string  `json:"avatar_url"`
	Phone            *string  `json:"phone"`
	TelegramUsername *string  `json:"telegram_username"`
	Topics           []string `json:"topics"`
	Bio              *string  `json:"bio"`
	Languages        []string `json:"languages"`
}

type UserResponse struct {
	User UserDTO `json:"user"`
}

type ListUsersResponse struct {
	Users []UserDTO `json:"users"`
}
