package clipboard

import (
	"os"
	"sync"
)

// SharedTerminal is a terminal written by both the TUI renderer and the OSC 52
// writer. Each Write holds the lock, so a sequence never lands inside a frame.
// It keeps Fd and Read so bubbletea still treats it as a TTY.
type SharedTerminal struct {
	mu sync.Mutex
	f  *os.File
}

func Share(f *os.File) *SharedTerminal {
	return &SharedTerminal{f: f}
}

func (t *SharedTerminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.f.Write(p)
}

func (t *SharedTerminal) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

func (t *SharedTerminal) Read(p []byte) (int, error) { return t.f.Read(p) }
func (t *SharedTerminal) Close() error               { return t.f.Close() }
func (t *SharedTerminal) Fd() uintptr                { return t.f.Fd() }
