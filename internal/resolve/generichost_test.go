package resolve

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"reelfetch/internal/link"
	"reelfetch/internal/logging"
)

const staticOrigin = "https://dns700.userdrive.org"

func TestGenericHost(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus link.Status
		wantURL    string // "" means the candidate URL
	}{
		{
			name:       "download button",
			body:       `<form><a id="downloadbtn" class="btn" href="https://dl3.usersdrive.com/files/abc/movie.mkv">Download</a></form>`,
			wantStatus: link.Resolved,
			wantURL:    "https://dl3.usersdrive.com/files/abc/movie.mkv",
		},
		{
			name:       "direct path fallback",
			body:       `<div><a class="dl" href="/d/abc123">Direct</a></div>`,
			wantStatus: link.Resolved,
			wantURL:    staticOrigin + "/d/abc123",
		},
		{
			name:       "direct path with spaces around equals",
			body:       `<a href = "/d/xyz/file.mkv">Direct</a>`,
			wantStatus: link.Resolved,
			wantURL:    staticOrigin + "/d/xyz/file.mkv",
		},
		{
			name:       "button wins over path",
			body:       `<a href="/d/later">x</a><a id="downloadbtn" href="https://cdn.example.com/f.mkv">Download</a>`,
			wantStatus: link.Resolved,
			wantURL:    "https://cdn.example.com/f.mkv",
		},
		{
			name:       "empty button falls through to path",
			body:       `<a id="downloadbtn" href="">Wait</a><a href="/d/p1">x</a>`,
			wantStatus: link.Resolved,
			wantURL:    staticOrigin + "/d/p1",
		},
		{
			name:       "nothing found",
			body:       `<html><body>File not found</body></html>`,
			wantStatus: link.Failed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			g := NewGenericHost(srv.Client(), staticOrigin+"/", logging.Discard())
			c := link.Candidate{URL: srv.URL + "/abc123.html", Host: link.GenericHost}
			got := g.Resolve(context.Background(), c)

			want := tt.wantURL
			if want == "" {
				want = c.URL
			}
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, want, got.URL)
			assert.Equal(t, c.URL, got.Origin)
			if tt.wantStatus == link.Failed {
				assert.ErrorIs(t, got.Err, link.ErrExtraction)
			}
		})
	}
}

func TestGenericHostNotFound(t *testing.T) {
	srv := httptest.NewTLSServer(http.NotFoundHandler())
	defer srv.Close()

	g := NewGenericHost(srv.Client(), staticOrigin, logging.Discard())
	c := link.Candidate{URL: srv.URL + "/gone.html", Host: link.GenericHost}
	got := g.Resolve(context.Background(), c)

	assert.Equal(t, link.Failed, got.Status)
	assert.Equal(t, c.URL, got.URL)
	assert.ErrorIs(t, got.Err, link.ErrNetwork)
}

func TestGenericHostRelativeButton(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<a id="downloadbtn" href="/files/movie.mkv">Download</a>`)
	}))
	defer srv.Close()

	g := NewGenericHost(srv.Client(), staticOrigin, logging.Discard())
	got := g.Resolve(context.Background(), link.Candidate{URL: srv.URL + "/abc.html", Host: link.GenericHost})

	assert.Equal(t, link.Resolved, got.Status)
	assert.Equal(t, srv.URL+"/files/movie.mkv", got.URL)
}

func TestGenericHostPlainHTTP(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		io.WriteString(w, `<a id="downloadbtn" href="http://dl1.usersdrive.com/files/movie.mkv">Download</a>`)
	}))
	defer srv.Close()

	g := NewGenericHost(srv.Client(), staticOrigin, logging.Discard())
	got := g.Resolve(context.Background(), link.Candidate{URL: srv.URL + "/abc.html", Host: link.GenericHost})

	assert.Equal(t, 1, hits)
	assert.Equal(t, link.Resolved, got.Status)
	assert.Equal(t, "http://dl1.usersdrive.com/files/movie.mkv", got.URL)
}
