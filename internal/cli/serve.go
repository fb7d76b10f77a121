package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lbriand/hbnb/internal/logging"
	"github.com/lbriand/hbnb/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		Long:  "Start a local HTTP server that renders the place listings as web pages, proxying the rental API. The session lives in a browser cookie.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")

	return cmd
}

func runServe(port int) error {
	logging.Setup(os.Getenv("HBNB_DEV_MODE") == "true")

	cfg, err := loadConfig()
	if err != nil {
		cfg = CLIConfig{}
	}

	srv, err := web.NewServer(getServerURL(), cfg.Images)
	if err != nil {
		return err
	}

	return srv.ListenAndServe(port)
}
