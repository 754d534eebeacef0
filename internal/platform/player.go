package platform

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/ytget/reelfeed/internal/model"
	"github.com/ytget/reelfeed/internal/trending"
)

// Player commands
const (
	DefaultPlayerCommand = "ffplay"
	MPVCommand           = "mpv"
	VLCCommand           = "vlc"
)

// ErrNoSource is returned when a record has nothing to play
var ErrNoSource = errors.New("record has no video source")

// ExternalPlayer opens video surfaces as external player processes.
// Completion is delivered through dispatch, which must run the callback on
// the goroutine that owns the carousel.
type ExternalPlayer struct {
	command  string
	dispatch func(func())
}

// NewExternalPlayer creates a player for command. An empty command uses
// ffplay; a nil dispatch runs callbacks directly.
func NewExternalPlayer(command string, dispatch func(func())) *ExternalPlayer {
	if strings.TrimSpace(command) == "" {
		command = DefaultPlayerCommand
	}
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &ExternalPlayer{command: command, dispatch: dispatch}
}

// Command returns the configured player command
func (p *ExternalPlayer) Command() string {
	return p.command
}

// Open starts the player for record
func (p *ExternalPlayer) Open(record model.VideoRecord, onFinished func()) (trending.Surface, error) {
	if record.VideoSource == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, record.ID)
	}

	cmd := exec.Command(p.command, PlayerArgs(p.command, record)...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", p.command, err)
	}
	log.Printf("Started %s (pid %d) for %s", p.command, cmd.Process.Pid, record.ID)

	s := &playerSurface{cmd: cmd, id: record.ID}
	go func() {
		err := cmd.Wait()
		if s.released.Load() {
			return
		}
		if err != nil {
			log.Printf("Player for %s exited: %v", record.ID, err)
		}
		p.dispatch(onFinished)
	}()
	return s, nil
}

type playerSurface struct {
	cmd      *exec.Cmd
	id       string
	released atomic.Bool
}

// Release kills the player process if it is still running
func (s *playerSurface) Release() {
	if s.released.Swap(true) {
		return
	}
	if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		log.Printf("Failed to stop player for %s: %v", s.id, err)
	}
}

// PlayerArgs returns the arguments that make command play the record once
// and exit
func PlayerArgs(command string, record model.VideoRecord) []string {
	title := record.GetDisplayTitle()
	name := strings.TrimSuffix(filepath.Base(command), filepath.Ext(command))

	switch name {
	case DefaultPlayerCommand:
		return []string{"-autoexit", "-loglevel", "error", "-window_title", title, record.VideoSource}
	case MPVCommand:
		return []string{"--really-quiet", "--title=" + title, record.VideoSource}
	case VLCCommand:
		return []string{"--play-and-exit", "--meta-title=" + title, record.VideoSource}
	default:
		return []string{record.VideoSource}
	}
}
