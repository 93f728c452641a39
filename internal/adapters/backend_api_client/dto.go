package backend_api_client

import "saas-dashboard/internal/core/domain"

type CompanyResponse struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Industry     string   `json:"industry"`
	Location     string   `json:"location"`
	Products     string   `json:"products"`
	FoundingYear *int     `json:"founding_year"`
	TotalFunding *float64 `json:"total_funding"`
	ARR          *float64 `json:"arr"`
	Valuation    *float64 `json:"valuation"`
}

type CompanyListResponse struct {
	Items      []CompanyResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

type IndustryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type LocationResponse struct {
	ID      int     `json:"id"`
	City    string  `json:"city"`
	State   *string `json:"state"`
	Country string  `json:"country"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

// Маппинг DTO -> доменная модель

func (r CompanyListResponse) toDomain() *domain.PaginatedResult[domain.Company] {
	items := make([]domain.Company, len(r.Items))
	for i, dto := range r.Items {
		items[i] = domain.Company{
			ID:           dto.ID,
			Name:         dto.Name,
			Industry:     dto.Industry,
			Location:     dto.Location,
			Products:     dto.Products,
			FoundingYear: dto.FoundingYear,
			TotalFunding: dto.TotalFunding,
			ARR:          dto.ARR,
			Valuation:    dto.Valuation,
		}
	}

	return &domain.PaginatedResult[domain.Company]{
		Items:      items,
		Total:      r.Total,
		Page:       r.Page,
		Size:       r.Size,
		TotalPages: r.TotalPages,
	}
}

func industriesToDomain(dtos []IndustryResponse) []domain.Industry {
	result := make([]domain.Industry, len(dtos))
	for i, dto := range dtos {
		result[i] = domain.Industry{ID: dto.ID, Name: dto.Name}
	}
	return result
}

func locationsToDomain(dtos []LocationResponse) []domain.Location {
	result := make([]domain.Location, len(dtos))
	for i, dto := range dtos {
		result[i] = domain.Location{
			ID:      dto.ID,
			City:    dto.City,
			State:   dto.State,
			Country: dto.Country,
		}
	}
	return result
}
