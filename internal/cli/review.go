package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lbriand/hbnb/internal/review"
	"github.com/lbriand/hbnb/internal/token"
)

func newReviewCmd() *cobra.Command {
	var rating int

	cmd := &cobra.Command{
		Use:   `review <place-id> --rating <1-5> "text"`,
		Short: "Submit a review for a place",
		Long:  "Submit a star rating and text review for a place. Requires being logged in.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(args[0], strings.Join(args[1:], " "), rating)
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "star rating (1-5)")

	return cmd
}

func runReview(placeID, text string, rating int) error {
	tok := getToken()
	if tok == "" {
		return fmt.Errorf("not logged in; run 'hbnb login' first")
	}

	userID, err := token.UserID(tok)
	if err != nil {
		userID = ""
	}

	// Everything is checked before any request goes out.
	if err := review.Validate(placeID, text, rating, userID); err != nil {
		return err
	}

	c := newAPIClient()
	created, err := c.SubmitReview(context.Background(), &review.Review{
		PlaceID: placeID,
		Text:    strings.TrimSpace(text),
		Rating:  rating,
		UserID:  userID,
	})
	if err != nil {
		return fmt.Errorf("submitting review: %w", err)
	}

	if isJSON() {
		return printJSON(created)
	}

	fmt.Printf("✓ Review submitted: %s\n", review.Stars(created.Rating))
	return nil
}
