package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/lbriand/hbnb/internal/place"
	"github.com/lbriand/hbnb/internal/review"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPlaceTable prints a list of places as a formatted table.
func printPlaceTable(places []*place.Place) error {
	if len(places) == 0 {
		fmt.Println("No places found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tPRICE\tHOST"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-----\t-----\t----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range places {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			shortID(p.ID), truncate(p.Title, 40), place.FormatPrice(p.Price), p.HostName()); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d places\n", len(places))
	return nil
}

// printPlaceSummary prints a single place in text format.
func printPlaceSummary(p *place.Place) {
	fmt.Printf("%s\n", p.Title)
	fmt.Printf("  ID:        %s\n", p.ID)
	fmt.Printf("  Host:      %s\n", p.HostName())
	fmt.Printf("  Price:     %s per night\n", place.FormatPrice(p.Price))
	fmt.Printf("  About:     %s\n", p.DisplayDescription())
	fmt.Println("  Amenities:")
	for _, name := range p.AmenityNames() {
		fmt.Printf("    - %s\n", name)
	}
}

// printReviewList prints reviews in text format.
func printReviewList(reviews []*review.Review) {
	if len(reviews) == 0 {
		fmt.Println("No reviews yet.")
		return
	}

	for _, r := range reviews {
		fmt.Printf("%s  %s\n  %s\n\n", review.Stars(r.Rating), r.DisplayName(), r.Text)
	}
}

// shortID abbreviates a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
