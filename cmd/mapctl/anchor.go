package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"orbitalmap/engine/anchors"
	"orbitalmap/engine/apiclient"
	"orbitalmap/engine/model"
	"orbitalmap/engine/projection"
)

func newAnchorCmd() *cobra.Command {
	var serverURL string
	var gameTimeSeconds float64
	var locationID string

	cmd := &cobra.Command{
		Use:   "anchor",
		Short: "Resolve and print a future anchor position from the bucketed anchor cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := apiclient.New(serverURL)

			fetch := func(ctx context.Context, t float64) ([]model.Location, error) {
				return client.Locations(ctx, true, &t)
			}
			cache := anchors.New(fetch)

			bucket := anchors.Bucket(gameTimeSeconds)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := cache.Ensure(ctx, bucket, projection.Project); err != nil {
				return fmt.Errorf("ensure bucket %d: %w", bucket, err)
			}

			pt, ok := cache.Get(locationID, gameTimeSeconds)
			if !ok {
				return fmt.Errorf("no anchor resolved for %q at t=%g (bucket %d, center %g)",
					locationID, gameTimeSeconds, bucket, anchors.BucketCenter(bucket))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s @ t=%g (bucket %d): rx=%.2f ry=%.2f\n",
				locationID, gameTimeSeconds, bucket, pt.X, pt.Y)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "server base URL")
	cmd.Flags().Float64Var(&gameTimeSeconds, "t", 0, "game time in seconds to resolve the anchor at")
	cmd.Flags().StringVar(&locationID, "location", "", "location id to resolve")
	cmd.MarkFlagRequired("location")
	return cmd
}
