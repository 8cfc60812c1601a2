// Package mpv drives an mpv process over its JSON IPC socket and exposes it
// as a player.API. yt-dlp, through mpv's ytdl hook, resolves media ids.
package mpv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/wavetube/internal/player"
)

// ErrMountMismatch is returned by NewHandle for a mount other than the
// one the process was started with.
var ErrMountMismatch = errors.New("mpv: mount id does not match the running instance")

const defaultCommandTimeout = 2 * time.Second

// Config configures the mpv process.
type Config struct {
	Binary         string
	SocketDir      string
	MountID        string
	Origin         string
	Params         map[string]string
	ExtraArgs      []string
	CommandTimeout time.Duration
}

// API starts mpv and hands out a Handle once its socket exists.
type API struct {
	cfg    Config
	socket string
	log    zerolog.Logger

	mu      sync.Mutex
	cmd     *exec.Cmd
	running bool // cleared by the Wait goroutine when cmd exits
}

// New returns an API for cfg. Nothing is started until Start.
func New(cfg Config, log zerolog.Logger) *API {
	if cfg.Binary == "" {
		cfg.Binary = "mpv"
	}
	if cfg.SocketDir == "" {
		cfg.SocketDir = os.TempDir()
	}
	if cfg.MountID == "" {
		cfg.MountID = player.MountID
	}
	if cfg.Params == nil {
		cfg.Params = player.DefaultParams()
	}
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = defaultCommandTimeout
	}
	return &API{
		cfg:    cfg,
		socket: filepath.Join(cfg.SocketDir, cfg.MountID+".sock"),
		log:    log.With().Str("component", "mpv").Logger(),
	}
}

// SocketPath returns the IPC socket location.
func (a *API) SocketPath() string { return a.socket }

// Start spawns mpv in idle mode. It returns once the process is running;
// Available turns true when the IPC socket appears.
func (a *API) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return nil
	}

	if err := os.MkdirAll(a.cfg.SocketDir, 0o700); err != nil {
		return fmt.Errorf("create socket dir: %w", err)
	}
	_ = os.Remove(a.socket)

	args := buildArgs(a.socket, a.cfg.Origin, a.cfg.Params, a.cfg.ExtraArgs)
	a.log.Info().Str("binary", a.cfg.Binary).Strs("args", args).Msg("starting mpv")

	cmd := exec.CommandContext(ctx, a.cfg.Binary, args...)
	cmd.Stdout = a.log
	cmd.Stderr = a.log
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}
	a.cmd = cmd
	a.running = true

	go func() {
		err := cmd.Wait()
		a.log.Info().Err(err).Msg("mpv exited")
		a.mu.Lock()
		if a.cmd == cmd {
			a.running = false
		}
		a.mu.Unlock()
	}()
	return nil
}

// Running reports whether the process started by Start is still alive.
func (a *API) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Available reports whether the IPC socket exists.
func (a *API) Available() bool {
	_, err := os.Stat(a.socket)
	return err == nil
}

// NewHandle connects to the running instance.
func (a *API) NewHandle(opts player.Options) (player.Handle, error) {
	if opts.MountID != a.cfg.MountID {
		return nil, fmt.Errorf("%w: %q", ErrMountMismatch, opts.MountID)
	}
	return Dial(a.socket, opts.Origin, a.cfg.CommandTimeout, a.log)
}

// Stop kills the process and removes the socket.
func (a *API) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var err error
	if a.cmd != nil && a.cmd.Process != nil {
		if kerr := a.cmd.Process.Kill(); kerr != nil && !errors.Is(kerr, os.ErrProcessDone) {
			err = fmt.Errorf("kill mpv: %w", kerr)
		}
	}
	a.cmd = nil
	a.running = false
	_ = os.Remove(a.socket)
	return err
}

// buildArgs turns embed params into the equivalent mpv flags.
func buildArgs(socket, origin string, params map[string]string, extra []string) []string {
	args := []string{
		"--idle=yes",
		"--input-ipc-server=" + socket,
		"--no-video",
		"--no-terminal",
		"--force-window=no",
	}
	if params["controls"] == "0" {
		args = append(args, "--osc=no")
	}
	if params["disablekb"] == "1" {
		args = append(args, "--input-default-bindings=no", "--input-vo-keyboard=no")
	}
	if params["rel"] == "0" {
		args = append(args, "--ytdl-raw-options-append=no-playlist=")
	}
	if origin != "" {
		args = append(args, "--http-header-fields="+headerFields(origin))
	}
	return append(args, extra...)
}

func headerFields(origin string) string {
	return "Origin: " + origin + ",Referer: " + origin + "/"
}

