package platform

import (
	"errors"
	"os/exec"
	"reflect"
	"runtime"
	"testing"
	"time"

	"github.com/ytget/reelfeed/internal/model"
)

func TestPlayerArgs(t *testing.T) {
	rec := model.VideoRecord{ID: "1", Title: "Clip", VideoSource: "https://example.com/v.mp4"}

	tests := []struct {
		command  string
		expected []string
	}{
		{"ffplay", []string{"-autoexit", "-loglevel", "error", "-window_title", "Clip", rec.VideoSource}},
		{"/usr/local/bin/ffplay", []string{"-autoexit", "-loglevel", "error", "-window_title", "Clip", rec.VideoSource}},
		{"mpv", []string{"--really-quiet", "--title=Clip", rec.VideoSource}},
		{"vlc", []string{"--play-and-exit", "--meta-title=Clip", rec.VideoSource}},
		{"custom-player", []string{rec.VideoSource}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			if got := PlayerArgs(tt.command, rec); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("PlayerArgs(%s) = %v, expected %v", tt.command, got, tt.expected)
			}
		})
	}
}

func TestNewExternalPlayer_Defaults(t *testing.T) {
	p := NewExternalPlayer("  ", nil)
	if p.Command() != DefaultPlayerCommand {
		t.Errorf("Command() = %s, expected %s", p.Command(), DefaultPlayerCommand)
	}
}

func TestExternalPlayer_NoSource(t *testing.T) {
	p := NewExternalPlayer("ffplay", nil)
	_, err := p.Open(model.VideoRecord{ID: "x"}, func() {})
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("Open() error = %v, expected ErrNoSource", err)
	}
}

func TestExternalPlayer_MissingCommand(t *testing.T) {
	p := NewExternalPlayer("reelfeed-no-such-player", nil)
	_, err := p.Open(model.VideoRecord{ID: "x", VideoSource: "v.mp4"}, func() {})
	if err == nil {
		t.Error("Open() with missing command should fail")
	}
}

func requireCommand(t *testing.T, name string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("posix utilities required")
	}
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not available", name)
	}
	return path
}

func TestExternalPlayer_ReportsNaturalEnd(t *testing.T) {
	cmd := requireCommand(t, "true")

	done := make(chan struct{}, 1)
	p := NewExternalPlayer(cmd, func(f func()) { f() })
	surface, err := p.Open(model.VideoRecord{ID: "1", VideoSource: "ignored"}, func() {
		done <- struct{}{}
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer surface.Release()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("completion was not reported")
	}
}

func TestExternalPlayer_ReleaseSuppressesCompletion(t *testing.T) {
	cmd := requireCommand(t, "sleep")

	done := make(chan struct{}, 1)
	p := NewExternalPlayer(cmd, func(f func()) { f() })
	// sleep receives the source as its only argument
	surface, err := p.Open(model.VideoRecord{ID: "1", VideoSource: "30"}, func() {
		done <- struct{}{}
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	surface.Release()
	surface.Release()

	select {
	case <-done:
		t.Error("released surface reported completion")
	case <-time.After(300 * time.Millisecond):
	}
}
