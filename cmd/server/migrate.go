package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func migrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status]",
		Short: "Apply, roll back or list schema migrations",
		Long: `Manage the schema of the configured store.

Examples:
  leadbook migrate up
  leadbook migrate down
  STORE_DRIVER=postgres leadbook migrate status`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx, e.cfg)
			if err != nil {
				return err
			}
			defer st.db.Close()
			m, err := st.migrator(e)
			if err != nil {
				return err
			}
			switch args[0] {
			case "up":
				return m.Up(ctx)
			case "down":
				return m.Down(ctx)
			case "status":
				return m.Status(ctx, os.Stdout)
			}
			return fmt.Errorf("unknown migrate action %q", args[0])
		},
	}
}
