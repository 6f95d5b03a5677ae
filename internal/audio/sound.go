// Package audio plays the crypt's sound effects and background music.
//
// The engine never talks to a device directly: the game session maps engine
// events to Sound values and hands them to a Boundary, which drops and logs
// any failure of the underlying Sink.
package audio

import "errors"

// Sound is a closed set of effect kinds.
type Sound int

const (
	SoundStep Sound = iota
	SoundHurt
	SoundWin

	soundCount
)

var soundNames = [soundCount]string{
	SoundStep: "step",
	SoundHurt: "hurt",
	SoundWin:  "win",
}

func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// Valid reports whether s is one of the defined sounds.
func (s Sound) Valid() bool {
	return s >= 0 && s < soundCount
}

// ErrNotInitialized is returned by sinks used before their device is open.
var ErrNotInitialized = errors.New("audio: device not initialized")

// ErrUnknownSound is returned for sounds outside the defined set.
var ErrUnknownSound = errors.New("audio: unknown sound")

// Sink is an output device for sounds.
type Sink interface {
	Play(s Sound) error
	SetMusic(on bool) error
	Close() error
}

// Nop is a Sink that discards everything.
type Nop struct{}

func (Nop) Play(Sound) error    { return nil }
func (Nop) SetMusic(bool) error { return nil }
func (Nop) Close() error        { return nil }
