package launcher

import (
	"os"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"desktop", "desktop"},
		{"DESKTOP", "desktop"},
		{"termux", "termux"},
		{"none", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.name).Name(); got != tt.expected {
				t.Errorf("New(%q).Name() = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestNewAutoOnAndroid(t *testing.T) {
	t.Setenv(androidMarker, "/system")

	if got := New("auto").Name(); got != "termux" {
		t.Errorf("auto on Android = %q, want termux", got)
	}
}

func TestNewAutoOnDesktop(t *testing.T) {
	t.Setenv(androidMarker, "")
	os.Unsetenv(androidMarker)

	if got := New("auto").Name(); got != "desktop" {
		t.Errorf("auto off Android = %q, want desktop", got)
	}
}

func TestNoneOpen(t *testing.T) {
	l := New("none")
	if !l.Available() {
		t.Error("none launcher should always be available")
	}
	if err := l.Open("https://megadl.boats/download/x"); err != nil {
		t.Errorf("none.Open() error: %v", err)
	}
}
