package domain

// PaginatedResult - страница результатов. TotalPages считает backend,
// ядро его только отображает.
type PaginatedResult[T any] struct {
	Items      []T
	Total      int
	Page       int
	Size       int
	TotalPages int
}

// HasPages - показывать ли блок пагинации вообще
func (p PaginatedResult[T]) HasPages() bool {
	return p.TotalPages > 0
}

// DashboardView - согласованный результат одного прохода рендера.
// Либо все три выборки, либо ошибка.
type DashboardView struct {
	State      FilterState
	Companies  PaginatedResult[Company]
	Industries []Industry
	Locations  []Location
}
