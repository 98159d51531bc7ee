package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"reelfetch/internal/link"
	"reelfetch/internal/pipeline"
	"reelfetch/internal/ui"
)

// searchRun is the default command: reelfetch [title]
func searchRun(cmd *cobra.Command, args []string) error {
	a := newApp(cfg)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		a.search(ctx, out, strings.Join(args, " "))
		return nil
	}

	if flagJSON {
		return fmt.Errorf("--json needs a title")
	}
	if !ui.IsInteractive() {
		return fmt.Errorf("no title given and no terminal to prompt on")
	}

	// Interactive loop: failures are reported and the loop carries on.
	for {
		title, err := ui.Input("Movie title (or exit)")
		if errors.Is(err, ui.ErrQuit) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}
		a.search(ctx, out, title)

		if ctx.Err() != nil {
			fmt.Fprintln(out, "Interrupted.")
			return nil
		}
	}
}

// search runs one title through the pipeline. Every failure is reported as
// a warning; nothing here aborts the program.
func (a *app) search(ctx context.Context, out io.Writer, title string) {
	slug, candidates, err := a.pipeline.Candidates(ctx, title)
	if errors.Is(err, pipeline.ErrEmptyTitle) {
		logger.Warn("title has no usable characters, try another", "title", title)
		return
	}

	page := a.fetcher.PageURL(slug)
	if err != nil {
		logger.Warn("movie page not found or network error", "url", page, "err", err)
		return
	}
	if len(candidates) == 0 {
		logger.Warn("no download links found, try another title", "url", page)
		return
	}
	logger.Info("found download links", "count", len(candidates), "url", page)

	switch {
	case flagJSON:
		results := a.pipeline.ResolveAll(ctx, candidates)
		if err := writeJSON(out, title, page, candidates, results); err != nil {
			logger.Error("writing JSON", "err", err)
		}
	case !ui.IsInteractive():
		for _, r := range a.pipeline.ResolveAll(ctx, candidates) {
			fmt.Fprintln(out, ui.FormatResult(r))
		}
	case flagAll:
		a.resolveAllThenPick(ctx, out, candidates)
	default:
		a.pickThenResolve(ctx, out, candidates)
	}
}

// pickThenResolve lets the user choose a candidate, then resolves only that one.
func (a *app) pickThenResolve(ctx context.Context, out io.Writer, candidates []link.Candidate) {
	items := make([]string, len(candidates))
	for i, c := range candidates {
		items[i] = ui.FormatCandidate(c)
	}

	idx, err := ui.Select("Link to resolve", items)
	if err != nil {
		if !errors.Is(err, ui.ErrSkipped) {
			logger.Warn("selection failed", "err", err)
		}
		fmt.Fprintln(out, "Skipped.")
		return
	}

	var result link.Result
	err = ui.Spin(ctx, "Resolving final download link...", func(ctx context.Context) error {
		result = a.pipeline.Resolve(ctx, candidates[idx])
		return nil
	})
	if err != nil {
		logger.Warn("resolution interrupted", "err", err)
		return
	}

	fmt.Fprintln(out, ui.FormatResult(result))
	a.open(out, result.URL)
}

// resolveAllThenPick resolves every candidate first and lets the user choose
// among the results.
func (a *app) resolveAllThenPick(ctx context.Context, out io.Writer, candidates []link.Candidate) {
	var results []link.Result
	err := ui.Spin(ctx, fmt.Sprintf("Resolving %d links...", len(candidates)), func(ctx context.Context) error {
		results = a.pipeline.ResolveAll(ctx, candidates)
		return nil
	})
	if err != nil {
		logger.Warn("resolution interrupted", "err", err)
		return
	}

	items := make([]string, len(results))
	for i, r := range results {
		items[i] = strings.ReplaceAll(ui.FormatResult(r), "\n", " ")
	}

	idx, err := ui.Select("Link to open", items)
	if err != nil {
		if !errors.Is(err, ui.ErrSkipped) {
			logger.Warn("selection failed", "err", err)
		}
		fmt.Fprintln(out, "Skipped.")
		return
	}

	a.open(out, results[idx].URL)
}

// open hands a URL to the launcher. Failing to open is only a warning.
func (a *app) open(out io.Writer, url string) {
	if url == "" || a.opener.Name() == "none" {
		return
	}
	if !a.opener.Available() {
		logger.Warn("launcher not available", "launcher", a.opener.Name())
		return
	}

	fmt.Fprintf(out, "Opening: %s\n", url)
	if err := a.opener.Open(url); err != nil {
		logger.Warn("could not open link", "url", url, "err", err)
	}
}

// jsonResult is the machine-readable form of a link.Result.
type jsonResult struct {
	Host   string      `json:"host"`
	Status link.Status `json:"status"`
	URL    string      `json:"url"`
	Origin string      `json:"origin"`
	Error  string      `json:"error,omitempty"`
}

func toJSONResults(candidates []link.Candidate, results []link.Result) []jsonResult {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{
			Host:   candidates[i].Host.String(),
			Status: r.Status,
			URL:    r.URL,
			Origin: r.Origin,
		}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	return out
}

func writeJSON(w io.Writer, title, page string, candidates []link.Candidate, results []link.Result) error {
	payload := map[string]interface{}{
		"title":   title,
		"page":    page,
		"results": toJSONResults(candidates, results),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
