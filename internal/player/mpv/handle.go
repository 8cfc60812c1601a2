package mpv

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/buger/jsonparser"
	"github.com/rs/zerolog"

	"github.com/llehouerou/wavetube/internal/player"
)

var (
	// ErrClosed is returned by commands issued after Close.
	ErrClosed = errors.New("mpv: handle closed")
	// ErrTimeout is returned when mpv does not answer a command in time.
	ErrTimeout = errors.New("mpv: command timed out")
)

const (
	eventBufferSize = 16
	maxLineSize     = 1 << 20
	pauseObserverID = 1
)

// ipcCommand is one line of the JSON IPC protocol.
type ipcCommand struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

type reply struct {
	data     []byte
	dataType jsonparser.ValueType
	err      error
}

// Handle is a persistent IPC connection to mpv.
type Handle struct {
	conn    net.Conn
	log     zerolog.Logger
	timeout time.Duration

	nextID  atomic.Int64
	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[int64]chan reply

	events    chan player.Event
	done      chan struct{}
	closeOnce sync.Once

	// active is set between file-loaded and end-file.
	active atomic.Bool
	paused atomic.Bool

	// ytdlErr is the last ytdl_hook error; only the read loop touches it.
	ytdlErr string
}

// Dial connects to the IPC socket at path, observes the pause property and
// queues the Ready event.
func Dial(path, origin string, timeout time.Duration, log zerolog.Logger) (*Handle, error) {
	conn, err := net.DialTimeout("unix", path, timeout)
	if err != nil {
		return nil, fmt.Errorf("connect to mpv socket: %w", err)
	}
	h := &Handle{
		conn:    conn,
		log:     log,
		timeout: timeout,
		pending: make(map[int64]chan reply),
		events:  make(chan player.Event, eventBufferSize),
		done:    make(chan struct{}),
	}
	go h.readLoop()

	if _, err := h.command("observe_property", pauseObserverID, "pause"); err != nil {
		_ = h.Close()
		return nil, fmt.Errorf("observe pause: %w", err)
	}
	if _, err := h.command("request_log_messages", "error"); err != nil {
		h.log.Warn().Err(err).Msg("could not request mpv log messages")
	}
	if origin != "" {
		if _, err := h.command("set_property", "http-header-fields", headerFields(origin)); err != nil {
			h.log.Warn().Err(err).Msg("could not set origin headers")
		}
	}

	h.events <- player.Event{Kind: player.EventReady}
	return h, nil
}

// WatchURL returns the URL mpv's ytdl hook resolves for a media id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(id)
}

func (h *Handle) Load(id string) error {
	if id == "" {
		return errors.New("mpv: empty media id")
	}
	if _, err := h.command("loadfile", WatchURL(id), "replace"); err != nil {
		return err
	}
	_, err := h.command("set_property", "pause", false)
	return err
}

func (h *Handle) Play() error {
	_, err := h.command("set_property", "pause", false)
	return err
}

func (h *Handle) Pause() error {
	_, err := h.command("set_property", "pause", true)
	return err
}

func (h *Handle) SeekTo(pos time.Duration) error {
	_, err := h.command("seek", pos.Seconds(), "absolute")
	return err
}

func (h *Handle) SetVolume(percent int) error {
	percent = max(0, min(100, percent))
	_, err := h.command("set_property", "volume", percent)
	return err
}

func (h *Handle) CurrentTime() (time.Duration, error) {
	return h.seconds("time-pos")
}

func (h *Handle) Duration() (time.Duration, error) {
	return h.seconds("duration")
}

func (h *Handle) Events() <-chan player.Event { return h.events }

// Close drops the connection. mpv keeps running; see API.Stop.
func (h *Handle) Close() error {
	var err error
	h.closeOnce.Do(func() {
		close(h.done)
		err = h.conn.Close()
	})
	return err
}

func (h *Handle) seconds(property string) (time.Duration, error) {
	r, err := h.command("get_property", property)
	if err != nil {
		return 0, err
	}
	if r.dataType != jsonparser.Number {
		return 0, fmt.Errorf("mpv: %s is not a number", property)
	}
	f, err := jsonparser.ParseFloat(r.data)
	if err != nil {
		return 0, fmt.Errorf("mpv: parse %s: %w", property, err)
	}
	return time.Duration(f * float64(time.Second)), nil
}

func (h *Handle) command(args ...any) (reply, error) {
	select {
	case <-h.done:
		return reply{}, ErrClosed
	default:
	}

	id := h.nextID.Add(1)
	ch := make(chan reply, 1)
	h.mu.Lock()
	h.pending[id] = ch
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		delete(h.pending, id)
		h.mu.Unlock()
	}()

	line, err := json.Marshal(ipcCommand{Command: args, RequestID: id})
	if err != nil {
		return reply{}, fmt.Errorf("encode mpv command: %w", err)
	}
	line = append(line, '\n')

	h.writeMu.Lock()
	_ = h.conn.SetWriteDeadline(time.Now().Add(h.timeout))
	_, err = h.conn.Write(line)
	h.writeMu.Unlock()
	if err != nil {
		return reply{}, fmt.Errorf("send mpv command: %w", err)
	}

	timer := time.NewTimer(h.timeout)
	defer timer.Stop()
	select {
	case r := <-ch:
		return r, r.err
	case <-timer.C:
		return reply{}, fmt.Errorf("%v: %w", args[0], ErrTimeout)
	case <-h.done:
		return reply{}, ErrClosed
	}
}

func (h *Handle) readLoop() {
	sc := bufio.NewScanner(h.conn)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		h.dispatch(sc.Bytes())
	}
	select {
	case <-h.done:
	default:
		h.log.Warn().Err(sc.Err()).Msg("mpv connection lost")
		select {
		case h.events <- player.Event{Kind: player.EventError, Code: player.CodeHTML5}:
		default:
		}
		_ = h.Close()
	}
}

func (h *Handle) dispatch(line []byte) {
	if name, err := jsonparser.GetString(line, "event"); err == nil {
		h.handleEvent(name, line)
		return
	}

	id, err := jsonparser.GetInt(line, "request_id")
	if err != nil {
		h.log.Debug().Bytes("line", line).Msg("unexpected mpv message")
		return
	}
	var r reply
	status, _ := jsonparser.GetString(line, "error")
	if status != "success" {
		r.err = fmt.Errorf("mpv: %s", status)
	} else if v, typ, _, err := jsonparser.Get(line, "data"); err == nil {
		r.data = append([]byte(nil), v...)
		r.dataType = typ
	}

	h.mu.Lock()
	ch := h.pending[id]
	h.mu.Unlock()
	if ch != nil {
		ch <- r
	}
}

func (h *Handle) handleEvent(name string, line []byte) {
	switch name {
	case "property-change":
		prop, _ := jsonparser.GetString(line, "name")
		if prop != "pause" {
			return
		}
		paused, err := jsonparser.GetBoolean(line, "data")
		if err != nil {
			return
		}
		h.paused.Store(paused)
		if !h.active.Load() {
			return
		}
		if paused {
			h.emitState(player.Paused)
		} else {
			h.emitState(player.Playing)
		}

	case "log-message":
		prefix, _ := jsonparser.GetString(line, "prefix")
		level, _ := jsonparser.GetString(line, "level")
		if prefix != "ytdl_hook" || (level != "error" && level != "fatal") {
			return
		}
		text, _ := jsonparser.GetString(line, "text")
		h.ytdlErr = strings.TrimSpace(text)

	case "file-loaded":
		h.ytdlErr = ""
		h.active.Store(true)
		h.emitState(player.Buffering)

	case "playback-restart":
		if h.active.Load() && !h.paused.Load() {
			h.emitState(player.Playing)
		}

	case "end-file":
		reason, _ := jsonparser.GetString(line, "reason")
		switch reason {
		case "eof":
			h.active.Store(false)
			h.emitState(player.Ended)
		case "error":
			h.active.Store(false)
			fileErr, _ := jsonparser.GetString(line, "file_error")
			reason := strings.TrimSpace(h.ytdlErr + " " + fileErr)
			h.ytdlErr = ""
			h.log.Debug().Str("file_error", fileErr).Str("reason", reason).Msg("mpv end-file error")
			h.emit(player.Event{Kind: player.EventError, Code: CodeFor(reason)})
		}
		// stop and redirect come from loadfile replace; the next file follows.
	}
}

func (h *Handle) emitState(s player.PlayState) {
	h.emit(player.Event{Kind: player.EventStateChange, State: s})
}

func (h *Handle) emit(ev player.Event) {
	select {
	case h.events <- ev:
	case <-h.done:
	}
}

var _ player.Handle = (*Handle)(nil)
