package rest

import (
	"saas-dashboard/internal/core/domain"
	"saas-dashboard/internal/core/format"
	"saas-dashboard/internal/core/querystate"
)

// newDashboardPage переводит DashboardView в модель представления.
// rawQuery - исходная строка запроса, от нее строятся ссылки пагинации,
// чтобы неизвестные параметры не терялись.
func newDashboardPage(view *domain.DashboardView, rawQuery string) DashboardPageDTO {
	state := view.State

	page := DashboardPageDTO{
		Query: rawQuery,
		State: FilterStateDTO{
			IndustryID: state.IndustryID,
			LocationID: state.LocationID,
			Page:       state.Page,
		},
		HasActiveFilters: state.HasActiveFilters(),
		Industries:       make([]FilterOptionDTO, 0, len(view.Industries)),
		Locations:        make([]FilterOptionDTO, 0, len(view.Locations)),
		Companies:        make([]CompanyRowDTO, 0, len(view.Companies.Items)),
	}

	for _, ind := range view.Industries {
		page.Industries = append(page.Industries, FilterOptionDTO{
			ID:       ind.ID,
			Label:    ind.Name,
			Selected: isSelected(state.IndustryID, ind.ID),
		})
	}
	for _, loc := range view.Locations {
		page.Locations = append(page.Locations, FilterOptionDTO{
			ID:       loc.ID,
			Label:    loc.Label(),
			Selected: isSelected(state.LocationID, loc.ID),
		})
	}

	for _, c := range view.Companies.Items {
		badge := format.IndustryBadge(c.Industry)
		page.Companies = append(page.Companies, CompanyRowDTO{
			ID:           c.ID,
			Name:         c.Name,
			Industry:     BadgeDTO{Label: badge.Label, Classes: badge.Classes},
			Location:     c.Location,
			Products:     c.Products,
			FoundingYear: format.Year(c.FoundingYear),
			TotalFunding: format.Currency(c.TotalFunding),
			ARR:          format.Currency(c.ARR),
			Valuation:    format.Currency(c.Valuation),
		})
	}

	// Номер страницы и число страниц берутся из ответа backend
	pager := querystate.Pager{Page: view.Companies.Page, TotalPages: view.Companies.TotalPages}
	page.Pagination = PaginationDTO{
		Visible:    view.Companies.HasPages(),
		Page:       pager.Page,
		TotalPages: pager.TotalPages,
		Total:      view.Companies.Total,
		TotalLabel: format.RecordCount(view.Companies.Total),
		HasPrev:    pager.HasPrev(),
		HasNext:    pager.HasNext(),
	}
	if page.Pagination.HasPrev {
		page.Pagination.PrevQuery = pager.PrevQuery(rawQuery)
	}
	if page.Pagination.HasNext {
		page.Pagination.NextQuery = pager.NextQuery(rawQuery)
	}

	return page
}

func isSelected(selected *int, id int) bool {
	return selected != nil && *selected == id
}
