package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"orbitalmap/engine/curves"
	"orbitalmap/engine/model"
)

func newCurveCmd() *cobra.Command {
	var sunX, sunY float64
	var fromX, fromY float64
	var toX, toY float64
	var samples int

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Preview a Hohmann transit arc's sampled points between two world positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sun := model.Point{X: sunX, Y: sunY}
			from := model.Point{X: fromX, Y: fromY}
			to := model.Point{X: toX, Y: toY}

			arc := curves.NewHohmannArcCurve(sun, from, to, curves.Endpoints{
				TrackStartOrig: from,
				TrackEndOrig:   to,
			})

			if samples < 2 {
				samples = 2
			}
			for i := 0; i < samples; i++ {
				t := float64(i) / float64(samples-1)
				p := arc.Point(t)
				fmt.Fprintf(cmd.OutOrStdout(), "t=%.3f x=%.2f y=%.2f\n", t, p.X, p.Y)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "arc length: %.2f\n", arc.Length())
			return nil
		},
	}

	cmd.Flags().Float64Var(&sunX, "sun-x", 0, "sun world X")
	cmd.Flags().Float64Var(&sunY, "sun-y", 0, "sun world Y")
	cmd.Flags().Float64Var(&fromX, "from-x", 100, "origin world X")
	cmd.Flags().Float64Var(&fromY, "from-y", 0, "origin world Y")
	cmd.Flags().Float64Var(&toX, "to-x", 0, "destination world X")
	cmd.Flags().Float64Var(&toY, "to-y", 200, "destination world Y")
	cmd.Flags().IntVar(&samples, "samples", 10, "number of points to print along the arc")
	return cmd
}
