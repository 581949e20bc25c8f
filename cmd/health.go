package cmd

import (
	"context"
	"fmt"
	"time"

	"object-gateway/core/objectstore"

	"github.com/spf13/cobra"
)

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Write the health marker object",
	Long:  `Creates the default bucket if needed and writes a small marker object into it. Exits non-zero on failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		store, err := openStore(cfg, logg)
		if err != nil {
			return err
		}

		timeout, _ := cmd.Flags().GetDuration("timeout")
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if err := store.Health(ctx); err != nil {
			return fmt.Errorf("storage unhealthy: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok %s/%s\n", store.Bucket(""), store.Key(objectstore.HealthKey))
		return nil
	},
}

func init() {
	healthCmd.Flags().Duration("timeout", 10*time.Second, "Probe timeout")
	RootCmd.AddCommand(healthCmd)
}
