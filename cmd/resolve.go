package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nonton/internal/httputil"
	"nonton/internal/provider"
	"nonton/internal/relay"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <episode-url>",
	Short: "Print the stream URL of an episode page",
	Args:  cobra.ExactArgs(1),
	RunE:  resolveRun,
}

func resolveRun(cmd *cobra.Command, args []string) error {
	episodeURL := args[0]
	if err := httputil.ValidateURL(episodeURL); err != nil {
		return fmt.Errorf("episode URL: %w", err)
	}

	p := provider.NewAnimasu(cfg.Base)
	streamURL, err := p.StreamURL(cmd.Context(), episodeURL)
	if err != nil {
		logger.Debug("resolve failed", "err", err)
		if errors.Is(err, provider.ErrNoStream) {
			return fmt.Errorf("no player found on the episode page")
		}
		return fmt.Errorf("could not load the episode page")
	}

	if flagJSON {
		out := map[string]string{
			"episode": episodeURL,
			"stream":  streamURL,
			"relay":   relay.WatchURL(relay.BaseURL(cfg.Port), episodeURL),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(streamURL)
	return nil
}
