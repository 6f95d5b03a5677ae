package audio

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Boundary guards the game from sink failures. Errors and panics raised by
// the sink are logged and swallowed; nothing is ever returned to the caller.
type Boundary struct {
	mu      sync.Mutex
	sink    Sink
	logger  *log.Logger
	enabled bool
	music   bool
}

// NewBoundary wraps sink. A nil sink plays nothing, a nil logger logs nothing.
func NewBoundary(sink Sink, logger *log.Logger, enabled bool) *Boundary {
	if sink == nil {
		sink = Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Boundary{
		sink:    sink,
		logger:  logger,
		enabled: enabled,
	}
}

// Enabled reports whether sounds and music are on.
func (b *Boundary) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

// SetEnabled switches effects and music together.
func (b *Boundary) SetEnabled(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = on
	b.applyMusic()
}

// Toggle flips the enabled flag and returns the new value.
func (b *Boundary) Toggle() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = !b.enabled
	b.applyMusic()
	return b.enabled
}

// Play emits s when enabled.
func (b *Boundary) Play(s Sound) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled {
		return
	}
	b.call("play "+s.String(), func() error { return b.sink.Play(s) })
}

// Music requests the background loop on or off. The loop only sounds while
// the boundary is enabled.
func (b *Boundary) Music(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.music = on
	b.applyMusic()
}

// Close releases the sink.
func (b *Boundary) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.call("close", b.sink.Close)
}

func (b *Boundary) applyMusic() {
	on := b.music && b.enabled
	b.call(fmt.Sprintf("music %t", on), func() error { return b.sink.SetMusic(on) })
}

func (b *Boundary) call(op string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("audio sink panicked", "op", op, "panic", r)
		}
	}()
	if err := fn(); err != nil {
		b.logger.Warn("audio sink failed", "op", op, "error", err)
	}
}
