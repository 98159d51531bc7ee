// Package resolve turns candidate links into final direct-download URLs.
//
// Each hosting service has its own Resolver. Resolvers never fail outright:
// every step that goes wrong degrades to the best URL reached so far and the
// outcome is reported through link.Result.Status.
package resolve

import (
	"context"
	"errors"

	"reelfetch/internal/link"
)

// ErrNoResolver is reported for candidates whose host has no registered resolver.
var ErrNoResolver = errors.New("no resolver for host")

// Resolver resolves candidates of a single host type.
type Resolver interface {
	Resolve(ctx context.Context, c link.Candidate) link.Result
}

// Func adapts a plain function to the Resolver interface.
type Func func(ctx context.Context, c link.Candidate) link.Result

// Resolve calls f.
func (f Func) Resolve(ctx context.Context, c link.Candidate) link.Result {
	return f(ctx, c)
}

// Registry dispatches candidates to resolvers by host tag.
type Registry struct {
	resolvers map[link.HostTag]Resolver
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[link.HostTag]Resolver)}
}

// Register sets the resolver for a host tag, replacing any previous one.
func (r *Registry) Register(tag link.HostTag, res Resolver) *Registry {
	r.resolvers[tag] = res
	return r
}

// Lookup returns the resolver for a tag.
func (r *Registry) Lookup(tag link.HostTag) (Resolver, bool) {
	res, ok := r.resolvers[tag]
	return res, ok
}

// Resolve dispatches c to the resolver registered for its host tag.
// Candidates with no resolver come back Failed with their own URL.
func (r *Registry) Resolve(ctx context.Context, c link.Candidate) link.Result {
	res, ok := r.resolvers[c.Host]
	if !ok {
		return link.Fail(c.URL, ErrNoResolver)
	}
	return res.Resolve(ctx, c)
}
