package httptransport

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SummaryResponse struct {
	Period       string `json:"period"`
	WIP          int    `json:"wip"`
	Overdue      int    `json:"overdue"`
	EditorReview int    `json:"editor_review"`
	Published    int    `json:"published"`
}

type StagesResponse struct {
	Period               string             `json:"period"`
	Stages               map[string]int     `json:"stages"`
	StagesNoDelayPercent map[string]float64 `json:"stages_no_delay_percent"`
}

type DailyCountDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type PublicationsResponse struct {
	Period              string          `json:"period"`
	Publications        []DailyCountDTO `json:"publications"`
	ComparePeriod       string          `json:"compare_period,omitempty"`
	ComparePublications []DailyCountDTO `json:"compare_publications,omitempty"`
}
