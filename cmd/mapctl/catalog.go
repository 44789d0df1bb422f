package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"orbitalmap/engine/apiclient"
	"orbitalmap/engine/projection"
)

func newCatalogCmd() *cobra.Command {
	var serverURL string
	var dynamic bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Dump the projected location catalog from a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := apiclient.New(serverURL)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			locations, err := client.Locations(ctx, dynamic, nil)
			if err != nil {
				return fmt.Errorf("fetch locations: %w", err)
			}
			projected := projection.Project(locations)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(projected)
			}

			for _, loc := range projected {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-12s rx=%.1f ry=%.1f\n", loc.ID, loc.Kind, loc.RX, loc.RY)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "server base URL")
	cmd.Flags().BoolVar(&dynamic, "dynamic", false, "request dynamic (non-cluster) positions")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON instead of a table")
	return cmd
}
