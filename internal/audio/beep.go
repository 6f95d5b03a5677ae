package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// speaker.Init fails on a second call, so the device is opened once per
// process and shared by every BeepSink.
type audioDevice struct {
	once  sync.Once
	err   error
	mixer *beep.Mixer
}

var (
	device = &audioDevice{}

	openSpeaker = func(rate beep.SampleRate, bufferSize int) error {
		return speaker.Init(rate, bufferSize)
	}
	playOnSpeaker = func(s beep.Streamer) { speaker.Play(s) }
)

// open initializes the speaker on first use and returns the shared mixer.
func (d *audioDevice) open() (*beep.Mixer, error) {
	d.once.Do(func() {
		if err := openSpeaker(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
			d.err = fmt.Errorf("audio: open speaker: %w", err)
			return
		}
		d.mixer = &beep.Mixer{}
		playOnSpeaker(d.mixer)
	})
	return d.mixer, d.err
}

// Config holds the device settings of a BeepSink.
type Config struct {
	MasterVolume float64 // 0..1, applied to effects
	MusicVolume  float64 // 0..1, applied to the music loop
}

// BeepSink synthesizes sounds on the default output device through beep.
type BeepSink struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewBeepSink creates a sink. Call Init before playing anything.
func NewBeepSink(cfg Config) *BeepSink {
	return &BeepSink{cfg: cfg}
}

// Init attaches the sink to the output device, opening it if this is the
// first sink of the process.
func (s *BeepSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	mixer, err := device.open()
	if err != nil {
		return err
	}
	s.mixer = mixer
	s.initialized = true
	return nil
}

// Play mixes a new instance of the sound.
func (s *BeepSink) Play(snd Sound) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	st, err := effect(sampleRate, snd)
	if err != nil {
		return err
	}
	speaker.Lock()
	s.mixer.Add(withVolume(st, s.cfg.MasterVolume))
	speaker.Unlock()
	return nil
}

// SetMusic starts or pauses the background loop.
func (s *BeepSink) SetMusic(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		if on {
			return ErrNotInitialized
		}
		return nil
	}

	speaker.Lock()
	defer speaker.Unlock()
	if s.music == nil {
		if !on {
			return nil
		}
		s.music = &beep.Ctrl{Streamer: withVolume(newDrone(sampleRate), s.cfg.MusicVolume)}
		s.mixer.Add(s.music)
		return nil
	}
	s.music.Paused = !on
	return nil
}

// Close silences everything. The device stays open for the next sink.
func (s *BeepSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.music = nil
	s.initialized = false
	return nil
}
