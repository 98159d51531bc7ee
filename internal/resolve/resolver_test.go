package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelfetch/internal/link"
)

func TestRegistryDispatch(t *testing.T) {
	var redirectorCalls, genericCalls []string

	reg := NewRegistry().
		Register(link.Redirector, Func(func(_ context.Context, c link.Candidate) link.Result {
			redirectorCalls = append(redirectorCalls, c.URL)
			return link.Fail(c.URL, link.ErrNetwork)
		})).
		Register(link.GenericHost, Func(func(_ context.Context, c link.Candidate) link.Result {
			genericCalls = append(genericCalls, c.URL)
			return link.Done(c.URL, "https://dns700.userdrive.org/d/y")
		}))

	candidates := []link.Candidate{
		link.NewCandidate("https://megaup.net/x"),
		link.NewCandidate("https://usersdrive.com/y"),
	}

	var results []link.Result
	for _, c := range candidates {
		results = append(results, reg.Resolve(context.Background(), c))
	}

	assert.Equal(t, []string{"https://megaup.net/x"}, redirectorCalls)
	assert.Equal(t, []string{"https://usersdrive.com/y"}, genericCalls)

	require.Len(t, results, 2)
	// The first failing does not affect the second.
	assert.Equal(t, link.Failed, results[0].Status)
	assert.Equal(t, "https://megaup.net/x", results[0].URL)
	assert.Equal(t, link.Resolved, results[1].Status)
	assert.Equal(t, "https://dns700.userdrive.org/d/y", results[1].URL)
}

func TestRegistryUnknownHost(t *testing.T) {
	reg := NewRegistry()
	got := reg.Resolve(context.Background(), link.NewCandidate("https://yoteshinportal.cc/file/9"))

	assert.Equal(t, link.Failed, got.Status)
	assert.Equal(t, "https://yoteshinportal.cc/file/9", got.URL)
	assert.ErrorIs(t, got.Err, ErrNoResolver)
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.Lookup(link.Redirector)
	assert.False(t, ok)

	reg.Register(link.Redirector, Func(func(_ context.Context, c link.Candidate) link.Result { return link.Done(c.URL, c.URL) }))
	_, ok = reg.Lookup(link.Redirector)
	assert.True(t, ok)
}
