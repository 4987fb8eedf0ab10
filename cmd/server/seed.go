package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadbook/internal/seed"
)

func seedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the demo admin account and sample leads",
		Long: fmt.Sprintf(`Create the demo account (%s / %s) when it is missing and three sample
leads with notes when the store has no leads. Running it again changes nothing.`,
			seed.AdminUsername, seed.AdminPassword),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx, e.cfg)
			if err != nil {
				return err
			}
			defer st.db.Close()
			if e.cfg.AutoMigrate {
				m, err := st.migrator(e)
				if err != nil {
					return err
				}
				if err := m.Up(ctx); err != nil {
					return err
				}
			}
			res, err := newServices(st.db, e.log).seeder().Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin created: %v, leads: %d, notes: %d\n", res.AdminCreated, res.Leads, res.Notes)
			return nil
		},
	}
}
