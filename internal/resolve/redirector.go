package resolve

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/charmbracelet/log"

	"reelfetch/internal/httputil"
	"reelfetch/internal/link"
	"reelfetch/internal/solver"
)

// PageSolver loads a challenge-protected page through the anti-bot service.
type PageSolver interface {
	Get(ctx context.Context, pageURL string) (*solver.Response, error)
}

// Redirector resolves MegaUp links in two hops: the candidate page names an
// intermediate download page, and that page (behind a Cloudflare challenge,
// passed via the solver) names the final file link.
type Redirector struct {
	client *http.Client
	solver PageSolver
	log    *log.Logger

	Intermediate *regexp.Regexp // group 1 is the intermediate page URL
	Final        *regexp.Regexp // group 1 is the final download URL
}

// NewRedirector creates a Redirector with the default MegaUp patterns.
func NewRedirector(client *http.Client, s PageSolver, logger *log.Logger) *Redirector {
	if client == nil {
		client = httputil.NewClient()
	}
	return &Redirector{
		client:       client,
		solver:       s,
		log:          logger,
		Intermediate: defaultIntermediatePattern,
		Final:        defaultFinalPattern,
	}
}

// Resolve walks the two hops. It returns the final link when both succeed,
// the intermediate link when only the first does, and the candidate URL
// otherwise.
func (r *Redirector) Resolve(ctx context.Context, c link.Candidate) link.Result {
	r.log.Debug("resolving redirector link", "url", c.URL)

	page, err := httputil.GetPage(ctx, r.client, c.URL)
	if err != nil {
		r.log.Warn("could not fetch redirector page", "url", c.URL, "err", err)
		return link.Fail(c.URL, fmt.Errorf("%w: %v", link.ErrNetwork, err))
	}

	intermediate, ok := firstMatch(r.Intermediate, page)
	if !ok {
		r.log.Warn("could not extract intermediate link", "url", c.URL)
		return link.Fail(c.URL, fmt.Errorf("%w: no intermediate link on %s", link.ErrExtraction, c.URL))
	}
	r.log.Debug("intermediate link", "url", intermediate)

	solved, err := r.solver.Get(ctx, intermediate)
	if err != nil {
		r.log.Warn("solver request failed", "url", intermediate, "err", err)
		return link.Partial(c.URL, intermediate, fmt.Errorf("%w: %v", link.ErrCollaborator, err))
	}

	final, ok := firstMatch(r.Final, solved.Solution.Response)
	if !ok {
		r.log.Warn("could not find final download link", "url", intermediate)
		return link.Partial(c.URL, intermediate, fmt.Errorf("%w: no final link on %s", link.ErrExtraction, intermediate))
	}

	r.log.Debug("resolved", "url", final)
	return link.Done(c.URL, final)
}
