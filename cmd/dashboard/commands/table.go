package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"saas-dashboard/internal/core/domain"
	"saas-dashboard/internal/core/format"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	moneyStyle  = cellStyle.Align(lipgloss.Right)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var companyHeaders = []string{
	"Nombre", "Industria", "Ubicacion", "Productos", "Fundacion",
	"Inversion Total", "Ingresos Anuales", "Valoracion",
}

// первый денежный столбец, дальше все выравниваются вправо
const firstMoneyColumn = 5

// renderCompanies печатает таблицу компаний и строку пагинации
func renderCompanies(view *domain.DashboardView) string {
	var sb strings.Builder

	if len(view.Companies.Items) == 0 {
		sb.WriteString("No se encontraron empresas con los filtros seleccionados.\n")
	} else {
		rows := make([][]string, 0, len(view.Companies.Items))
		for _, c := range view.Companies.Items {
			rows = append(rows, []string{
				c.Name,
				format.IndustryBadge(c.Industry).Label,
				c.Location,
				c.Products,
				format.Year(c.FoundingYear),
				format.Currency(c.TotalFunding),
				format.Currency(c.ARR),
				format.Currency(c.Valuation),
			})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(mutedStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case col >= firstMoneyColumn:
					return moneyStyle
				default:
					return cellStyle
				}
			}).
			Headers(companyHeaders...).
			Rows(rows...)

		sb.WriteString(t.String())
		sb.WriteString("\n")
	}

	if view.Companies.HasPages() {
		fmt.Fprintf(&sb, "%s registros encontrados    Pagina %d de %d\n",
			format.RecordCount(view.Companies.Total), view.Companies.Page, view.Companies.TotalPages)
	}

	return sb.String()
}
