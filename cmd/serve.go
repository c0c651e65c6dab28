package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"nonton/internal/provider"
	"nonton/internal/relay"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run only the playback relay",
	Args:  cobra.NoArgs,
	RunE:  serveRun,
}

func serveRun(cmd *cobra.Command, args []string) error {
	p := provider.NewAnimasu(cfg.Base)
	srv := relay.NewServer(cfg.ListenAddr(), relay.NewHandler(p, logger), logger)

	ln, err := srv.Listen()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Relay running at %s\n", relay.BaseURL(cfg.Port))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx, ln)
}
