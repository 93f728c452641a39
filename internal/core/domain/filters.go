package domain

// FilterState - состояние фильтров и пагинации, восстановленное из URL.
// Живет ровно один проход рендера.
type FilterState struct {
	IndustryID *int
	LocationID *int
	Page       int // всегда >= 1
}

// DefaultFilterState - нефильтрованная первая страница
func DefaultFilterState() FilterState {
	return FilterState{Page: 1}
}

func (s FilterState) HasActiveFilters() bool {
	return s.IndustryID != nil || s.LocationID != nil
}

// CompanyQuery - параметры исходящего запроса /api/v1/companies.
// nil-поля в запрос не попадают.
type CompanyQuery struct {
	IndustryID *int
	LocationID *int
	Page       *int
	Size       *int
}

// CompanyQueryFromState собирает запрос из состояния фильтров. Size не задается,
// размер страницы остается за backend.
func CompanyQueryFromState(s FilterState) CompanyQuery {
	page := s.Page
	return CompanyQuery{
		IndustryID: s.IndustryID,
		LocationID: s.LocationID,
		Page:       &page,
	}
}
