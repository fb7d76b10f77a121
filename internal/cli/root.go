// Package cli defines the cobra command tree for hbnb.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/lbriand/hbnb/internal/api"
)

var flagFormat string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hbnb",
		Short:         "Browse rental places and reviews",
		Long:          "A client for the HBnB rental listing API. Browse places, read and write reviews, and manage your session from the CLI, an interactive TUI, or a local web UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newPlacesCmd(),
		newPlaceCmd(),
		newReviewsCmd(),
		newReviewCmd(),
		newBrowseCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the rental API using the stored
// session token, if any.
func newAPIClient() *api.Client {
	return api.New(getServerURL(), getToken())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
