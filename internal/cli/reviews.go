package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newReviewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reviews <place-id>",
		Short: "List reviews for a place",
		Long:  "List the existing reviews for a place. Works without logging in.",
		Args:  cobra.ExactArgs(1),
		RunE:  runReviews,
	}
}

func runReviews(cmd *cobra.Command, args []string) error {
	c := newAPIClient()

	reviews, err := c.ListReviews(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("fetching reviews: %w", err)
	}

	if isJSON() {
		return printJSON(reviews)
	}

	printReviewList(reviews)
	return nil
}
