package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newPlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <id>",
		Short: "Show place details",
		Long:  "Show full details for a place, including its reviews.",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlace,
	}
}

func runPlace(cmd *cobra.Command, args []string) error {
	id := args[0]
	if id == "" {
		return fmt.Errorf("no place specified")
	}

	c := newAPIClient()
	ctx := context.Background()

	p, err := c.GetPlace(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching place: %w", err)
	}

	reviews, err := c.ListReviews(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching reviews: %w", err)
	}

	if isJSON() {
		return printJSON(map[string]interface{}{
			"place":   p,
			"reviews": reviews,
		})
	}

	printPlaceSummary(p)
	fmt.Println()
	fmt.Printf("Reviews (%d):\n", len(reviews))
	printReviewList(reviews)

	return nil
}
