package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"nonton/internal/open"
	"nonton/internal/provider"
	"nonton/internal/relay"
	"nonton/internal/session"
	"nonton/internal/ui"
)

// searchRun is the default command: nonton <query>. It starts the relay,
// runs the selection flow and keeps serving until interrupted.
func searchRun(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	p := provider.NewAnimasu(cfg.Base)
	srv := relay.NewServer(cfg.ListenAddr(), relay.NewHandler(p, logger), logger)
	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	base := relay.BaseURL(cfg.Port)
	fmt.Fprintf(os.Stderr, "Relay running at %s\n", base)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gctx, ln)
	})
	g.Go(func() error {
		out := session.New(p, base, logger).Run(gctx, ui.New(), query)
		if out.State != session.Resolved {
			fmt.Fprintln(os.Stderr, out.Message)
			stop()
			return nil
		}
		return present(gctx, out)
	})

	return g.Wait()
}

// present hands the resolved relay URL to the user.
func present(ctx context.Context, out session.Outcome) error {
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]string{"url": out.RelayURL}); err != nil {
			return err
		}
	} else {
		fmt.Println(out.RelayURL)
	}

	if cfg.OpenBrowser {
		fmt.Fprintln(os.Stderr, out.Message)
		if err := open.Start(out.RelayURL, cfg.Browser); err != nil {
			logger.Warn("could not open browser, open the URL manually", "err", err)
		}
	}

	if ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop the relay.")
	}
	return nil
}
