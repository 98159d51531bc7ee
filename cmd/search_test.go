package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelfetch/internal/link"
	"reelfetch/internal/logging"
)

func TestWriteJSON(t *testing.T) {
	candidates := []link.Candidate{
		link.NewCandidate("https://megaup.net/abc/movie.mp4"),
		link.NewCandidate("https://usersdrive.com/xyz.html"),
	}
	results := []link.Result{
		link.Partial(candidates[0].URL, "https://download.megaup.net/?k=1", link.ErrCollaborator),
		link.Done(candidates[1].URL, "https://dns700.userdrive.org/d/xyz/movie.mp4"),
	}

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, "The Matrix", "https://channelmyanmar.to/the-matrix", candidates, results))

	var got struct {
		Title   string `json:"title"`
		Page    string `json:"page"`
		Results []struct {
			Host   string `json:"host"`
			Status string `json:"status"`
			URL    string `json:"url"`
			Origin string `json:"origin"`
			Error  string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "The Matrix", got.Title)
	assert.Equal(t, "https://channelmyanmar.to/the-matrix", got.Page)
	require.Len(t, got.Results, 2)

	assert.Equal(t, "redirector", got.Results[0].Host)
	assert.Equal(t, "partial", got.Results[0].Status)
	assert.Equal(t, "https://download.megaup.net/?k=1", got.Results[0].URL)
	assert.NotEmpty(t, got.Results[0].Error)

	assert.Equal(t, "generic-host", got.Results[1].Host)
	assert.Equal(t, "resolved", got.Results[1].Status)
	assert.Equal(t, candidates[1].URL, got.Results[1].Origin)
	assert.Empty(t, got.Results[1].Error)
}

func TestToJSONResultsOmitsNilError(t *testing.T) {
	c := link.NewCandidate("https://example.com/file")
	r := link.Fail(c.URL, errors.New("boom"))

	out := toJSONResults([]link.Candidate{c}, []link.Result{r})
	require.Len(t, out, 1)
	assert.Equal(t, "unknown", out[0].Host)
	assert.Equal(t, link.Failed, out[0].Status)
	assert.Equal(t, "boom", out[0].Error)
}

type recordingLauncher struct {
	opened []string
}

func (l *recordingLauncher) Name() string { return "recording" }

func (l *recordingLauncher) Available() bool { return true }

func (l *recordingLauncher) Open(url string) error {
	l.opened = append(l.opened, url)
	return nil
}

func TestOpenSkipsEmptyURL(t *testing.T) {
	logger = logging.Discard()
	l := &recordingLauncher{}
	a := &app{opener: l}

	var buf bytes.Buffer
	a.open(&buf, "")
	assert.Empty(t, l.opened)
	assert.Empty(t, buf.String())

	a.open(&buf, "https://megadl.boats/download/x")
	assert.Equal(t, []string{"https://megadl.boats/download/x"}, l.opened)
	assert.Contains(t, buf.String(), "Opening: https://megadl.boats/download/x")
}
