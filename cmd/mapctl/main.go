// Command mapctl is the orbital map client's development CLI: catalog
// inspection, anchor-cache probing, and transit-curve previews, useful
// for debugging a live server without launching the full ebiten client.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "mapctl",
		Short: "Development tools for the orbital map client",
	}

	root.AddCommand(newCatalogCmd())
	root.AddCommand(newAnchorCmd())
	root.AddCommand(newCurveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
