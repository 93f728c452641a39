package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"saas-dashboard/internal/core/domain"
	"saas-dashboard/internal/core/querystate"
)

func companiesCmd() *cobra.Command {
	var (
		industryID int
		locationID int
		page       int
	)

	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Print one page of the companies table",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(cliLogWriter())
			if err != nil {
				return err
			}
			defer application.Close()

			rawQuery := querystate.EncodeState(stateFromFlags(industryID, locationID, page))
			view, err := application.RenderDashboard(cmd.Context(), rawQuery)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderCompanies(view))
			return nil
		},
	}

	cmd.Flags().IntVar(&industryID, "industry-id", 0, "filter by industry id")
	cmd.Flags().IntVar(&locationID, "location-id", 0, "filter by location id")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

// stateFromFlags - нулевые и отрицательные значения флагов означают "не задано"
func stateFromFlags(industryID, locationID, page int) domain.FilterState {
	state := domain.DefaultFilterState()
	if industryID > 0 {
		state.IndustryID = &industryID
	}
	if locationID > 0 {
		state.LocationID = &locationID
	}
	if page > 1 {
		state.Page = page
	}
	return state
}
