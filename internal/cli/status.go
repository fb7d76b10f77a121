package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/lbriand/hbnb/internal/api"
	"github.com/lbriand/hbnb/internal/token"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and session status",
		Long:  "Tests the connection to the rental API and checks whether the stored session token is still accepted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	serverURL := getServerURL()
	tok := getToken()

	fmt.Printf("Server:  %s\n", serverURL)

	if tok == "" {
		fmt.Println("Session: not logged in")
		fmt.Println("\nRun 'hbnb login' to authenticate.")
		return nil
	}

	if userID, err := token.UserID(tok); err == nil {
		fmt.Printf("Session: user %s\n", userID)
	} else {
		fmt.Println("Session: token present but unreadable")
	}

	// Probe with an authenticated list request
	c := api.New(serverURL, tok)
	_, err := c.ListPlaces(context.Background())
	switch {
	case err == nil:
		fmt.Println("Status:  ✓ connected and authenticated")
	case api.IsStatus(err, http.StatusUnauthorized):
		fmt.Println("Status:  ✗ session expired or invalid")
		fmt.Println("\nRun 'hbnb login' to re-authenticate.")
	default:
		fmt.Printf("Status:  ✗ cannot reach server (%v)\n", err)
	}

	return nil
}
