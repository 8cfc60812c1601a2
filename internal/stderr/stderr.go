//go:build !windows

// Package stderr redirects file descriptor 2 into a pipe while the terminal
// UI owns the screen. Anything written there, by this process or by
// inherited child descriptors, is delivered on Messages instead of being
// painted over the interface.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"syscall"
)

// Messages receives captured lines. Lines are dropped when nobody reads.
var Messages = make(chan string, 100)

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
)

// Start begins capturing. It is a no-op when already started. On error
// nothing is redirected and output keeps going to the terminal.
func Start() error {
	mu.Lock()
	defer mu.Unlock()
	if pipeRead != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr, pipeRead, pipeWrite = orig, r, w
	go relay(r)
	return nil
}

func relay(r *os.File) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case Messages <- line:
		default:
		}
	}
}

// WriteOriginal writes to the terminal's stderr even while capturing.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()
	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(fd, []byte(msg))
}

// Stop restores the original descriptor. Messages stays open so a pending
// reader does not see a spurious close.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if pipeRead == nil {
		return
	}
	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	pipeWrite.Close()
	pipeRead.Close()
	origStderr, pipeRead, pipeWrite = -1, nil, nil
}
