// Package link defines the shared types for candidate download links and
// their resolution results.
package link

import "errors"

// HostTag identifies which hosting service a candidate link points to.
type HostTag int

const (
	Unknown HostTag = iota
	Redirector
	GenericHost
)

func (h HostTag) String() string {
	switch h {
	case Redirector:
		return "redirector"
	case GenericHost:
		return "generic-host"
	default:
		return "unknown"
	}
}

// Candidate is a link discovered on a movie listing page.
type Candidate struct {
	URL  string  // Link target as found on the page (absolute)
	Host HostTag // Inferred from the URL's domain
}

// NewCandidate classifies rawURL and returns the resulting Candidate.
func NewCandidate(rawURL string) Candidate {
	return Candidate{URL: rawURL, Host: Classify(rawURL)}
}

// Status reports how far resolution of a candidate got.
type Status int

const (
	Failed Status = iota
	PartiallyResolved
	Resolved
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case PartiallyResolved:
		return "partial"
	default:
		return "failed"
	}
}

// MarshalText renders the status by name in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of resolving a Candidate. URL is always usable: it is
// the final link when Status is Resolved, otherwise the best link reached
// before the failure (an intermediate page, or Origin itself).
type Result struct {
	Status Status
	URL    string
	Origin string // Candidate URL the resolution started from
	Err    error  // Why resolution stopped early; nil when Resolved
}

// Done builds a fully resolved Result.
func Done(origin, final string) Result {
	return Result{Status: Resolved, URL: final, Origin: origin}
}

// Partial builds a Result that stopped after reaching an intermediate link.
func Partial(origin, intermediate string, err error) Result {
	return Result{Status: PartiallyResolved, URL: intermediate, Origin: origin, Err: err}
}

// Fail builds a Result that falls back to the original candidate URL.
func Fail(origin string, err error) Result {
	return Result{Status: Failed, URL: origin, Origin: origin, Err: err}
}

// Failure kinds. Resolvers wrap these so callers can tell them apart with errors.Is.
var (
	// ErrNetwork covers connection errors, timeouts and non-success statuses.
	ErrNetwork = errors.New("network failure")
	// ErrExtraction means an expected pattern or element was not in the page.
	ErrExtraction = errors.New("extraction failure")
	// ErrCollaborator means the anti-bot solving service was unreachable or
	// returned a malformed envelope.
	ErrCollaborator = errors.New("collaborator failure")
	// ErrResource means the scripted browser failed to launch or an expected
	// element never appeared.
	ErrResource = errors.New("resource failure")
)
