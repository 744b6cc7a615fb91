package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prf-platform/prfweb/internal/api"
)

func newReportsCmd(a *app) *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the platform activity report (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			r, err := client.GetReport(cmd.Context(), period)
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintf(w, "period\t%s\n", r.Type)
			fmt.Fprintf(w, "users\t%d\n", r.TotalUsers)
			fmt.Fprintf(w, "orders\t%d\n", r.TotalOrders)
			fmt.Fprintf(w, "projects\t%d\n", r.TotalProjects)
			fmt.Fprintf(w, "revenue\t%.0f\n", r.TotalRevenue)
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&period, "period", api.ReportMonthly, "monthly, yearly or total")
	return cmd
}
