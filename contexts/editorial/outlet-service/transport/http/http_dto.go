package httptransport

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OutletDTO struct {
	OutletID    string            `json:"outlet_id"`
	Name        string            `json:"name"`
	LogoURL     string            `json:"logo_url,omitempty"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category,omitempty"`
	Language    string            `json:"language"`
	WebsiteURL  string            `json:"website_url,omitempty"`
	Contacts    map[string]string `json:"contacts"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

type CreateOutletRequest struct {
	Name        string            `json:"name"`
	LogoURL     string            `json:"logo_url"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Language    string            `json:"language"`
	WebsiteURL  string            `json:"website_url"`
	Contacts    map[string]string `json:"contacts"`
	Notes       string            `json:"notes"`
}

type UpdateOutletRequest struct {
	Name        *string           `json:"name"`
	LogoURL     *string           `json:"logo_url"`
	Description *string           `json:"description"`
	Category    *string           `json:"category"`
	Language    *string           `json:"language"`
	WebsiteURL  *string           `json:"website_url"`
	Contacts    map[string]string `json:"contacts"`
	Notes       *string           `json:"notes"`
}

type OutletResponse struct {
	Outlet OutletDTO `json:"outlet"`
}

type ListOutletsResponse struct {
	Outlets []OutletDTO `json:"outlets"`
}

type DeleteOutletResponse struct {
	OK bool `json:"ok"`
}
