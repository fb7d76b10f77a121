package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbriand/hbnb/internal/place"
)

func newPlacesCmd() *cobra.Command {
	var maxPrice string

	cmd := &cobra.Command{
		Use:   "places",
		Short: "List places",
		Long:  "List all places, optionally filtered by maximum nightly price.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaces(maxPrice)
		},
	}

	cmd.Flags().StringVar(&maxPrice, "max-price", "all", "maximum nightly price (all|10|50|100)")

	return cmd
}

func runPlaces(maxPrice string) error {
	bound, err := place.ParseMaxPrice(maxPrice)
	if err != nil {
		return err
	}

	c := newAPIClient()
	places, err := c.ListPlaces(context.Background())
	if err != nil {
		return fmt.Errorf("listing places: %w", err)
	}

	places = place.Filter(places, bound)

	if isJSON() {
		return printJSON(places)
	}

	return printPlaceTable(places)
}
