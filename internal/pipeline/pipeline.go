// Package pipeline ties the stages together: title to slug, slug to
// candidate links, candidate to resolved link.
package pipeline

import (
	"context"
	"errors"

	"reelfetch/internal/link"
	"reelfetch/internal/slug"
)

// ErrEmptyTitle is returned when a title normalizes to an empty slug.
var ErrEmptyTitle = errors.New("title is empty after normalization")

// Lister fetches the candidate links for a slug.
type Lister interface {
	Fetch(ctx context.Context, slug string) ([]link.Candidate, error)
}

// Dispatcher resolves a candidate with the resolver for its host.
type Dispatcher interface {
	Resolve(ctx context.Context, c link.Candidate) link.Result
}

// Pipeline runs the stages sequentially. It holds no state between calls.
type Pipeline struct {
	lister   Lister
	resolver Dispatcher
}

// New creates a Pipeline.
func New(lister Lister, resolver Dispatcher) *Pipeline {
	return &Pipeline{lister: lister, resolver: resolver}
}

// Candidates normalizes title and fetches its listing. The slug is returned
// even on error so callers can report which page was tried.
func (p *Pipeline) Candidates(ctx context.Context, title string) (string, []link.Candidate, error) {
	s := slug.Normalize(title)
	if s == "" {
		return "", nil, ErrEmptyTitle
	}

	candidates, err := p.lister.Fetch(ctx, s)
	if err != nil {
		return s, nil, err
	}
	return s, candidates, nil
}

// Resolve resolves a single candidate.
func (p *Pipeline) Resolve(ctx context.Context, c link.Candidate) link.Result {
	return p.resolver.Resolve(ctx, c)
}

// ResolveAll resolves every candidate in order, one at a time. Each result
// is independent of the others' outcomes.
func (p *Pipeline) ResolveAll(ctx context.Context, candidates []link.Candidate) []link.Result {
	results := make([]link.Result, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, p.resolver.Resolve(ctx, c))
	}
	return results
}
