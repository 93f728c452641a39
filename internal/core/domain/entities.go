package domain

import "fmt"

// Industry - элемент справочника отраслей
type Industry struct {
	ID   int
	Name string
}

// Location - элемент справочника локаций
type Location struct {
	ID      int
	City    string
	State   *string
	Country string
}

// Label возвращает подпись для выпадающего списка: "Город, Страна"
func (l Location) Label() string {
	return fmt.Sprintf("%s, %s", l.City, l.Country)
}

// Company - проекция компании, которую отдает backend.
// Industry и Location - уже готовые подписи, а не внешние ключи.
type Company struct {
	ID       int
	Name     string
	Industry string
	Location string
	Products string

	// nil означает "нет данных", 0 - это реальное значение
	FoundingYear *int
	TotalFunding *float64
	ARR          *float64
	Valuation    *float64
}

// HealthStatus - ответ /api/v1/health
type HealthStatus struct {
	Status      string
	Version     string
	Environment string
	Timestamp   string
}

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

func (h HealthStatus) IsHealthy() bool {
	return h.Status == HealthStatusHealthy
}
