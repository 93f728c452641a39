package rest

// DashboardPageDTO - модель представления одного прохода рендера.
// Ее же получает HTML-шаблон и отдает /api/dashboard.
type DashboardPageDTO struct {
	// Query - текущая строка запроса как есть, от нее считаются события
	Query            string            `json:"query"`
	State            FilterStateDTO    `json:"state"`
	HasActiveFilters bool              `json:"has_active_filters"`
	Industries       []FilterOptionDTO `json:"industries"`
	Locations        []FilterOptionDTO `json:"locations"`
	Companies        []CompanyRowDTO   `json:"companies"`
	Pagination       PaginationDTO     `json:"pagination"`
}

type FilterStateDTO struct {
	IndustryID *int `json:"industry_id"`
	LocationID *int `json:"location_id"`
	Page       int  `json:"page"`
}

type FilterOptionDTO struct {
	ID       int    `json:"id"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// CompanyRowDTO - строка таблицы, все значения уже отформатированы
type CompanyRowDTO struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Industry     BadgeDTO `json:"industry"`
	Location     string   `json:"location"`
	Products     string   `json:"products"`
	FoundingYear string   `json:"founding_year"`
	TotalFunding string   `json:"total_funding"`
	ARR          string   `json:"arr"`
	Valuation    string   `json:"valuation"`
}

type BadgeDTO struct {
	Label   string `json:"label"`
	Classes string `json:"classes"`
}

type PaginationDTO struct {
	Visible    bool   `json:"visible"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Total      int    `json:"total"`
	TotalLabel string `json:"total_label"`
	HasPrev    bool   `json:"has_prev"`
	HasNext    bool   `json:"has_next"`
	PrevQuery  string `json:"prev_query"`
	NextQuery  string `json:"next_query"`
}

// ErrorPageDTO - данные для страницы ошибки
type ErrorPageDTO struct {
	Message  string
	RetryURL string
}

type HealthResponseDTO struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

type ErrorResponseDTO struct {
	Error string `json:"error"`
}
