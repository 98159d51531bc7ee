package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"reelfetch/internal/link"
	"reelfetch/internal/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>...",
	Short: "Resolve host links directly, skipping the listing site",
	Args:  cobra.MinimumNArgs(1),
	RunE:  resolveRun,
}

func resolveRun(cmd *cobra.Command, args []string) error {
	a := newApp(cfg)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	candidates := make([]link.Candidate, len(args))
	for i, arg := range args {
		candidates[i] = link.NewCandidate(arg)
		logger.Debug("classified", "url", arg, "host", candidates[i].Host)
	}

	var results []link.Result
	err := ui.Spin(ctx, "Resolving...", func(ctx context.Context) error {
		results = a.pipeline.ResolveAll(ctx, candidates)
		return nil
	})
	if err != nil {
		return fmt.Errorf("resolving: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toJSONResults(candidates, results))
	}

	for _, r := range results {
		fmt.Fprintln(out, ui.FormatResult(r))
	}

	// A single link is opened straight away, like picking it interactively.
	if len(results) == 1 {
		a.open(out, results[0].URL)
	}
	return nil
}
