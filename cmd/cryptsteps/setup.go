package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cryptsteps/internal/audio"
	"github.com/vovakirdan/cryptsteps/internal/config"
	"github.com/vovakirdan/cryptsteps/internal/registry"
	"github.com/vovakirdan/cryptsteps/internal/telemetry"
)

// loadSettings resolves the effective settings: file, then environment,
// then the --difficulty flag.
func loadSettings() (config.Settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	preset := cfg.Difficulty
	if flagDifficulty != "" {
		if preset, err = config.ParsePreset(flagDifficulty); err != nil {
			return cfg, err
		}
	}
	config.ApplyPreset(&cfg, preset)

	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	return cfg, config.Validate(cfg)
}

// newLogger builds the CLI logger. The terminal belongs to the TUI while a
// game runs, so interactive commands log to --log-file or nowhere.
func newLogger(interactive bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		w, closer = f, f
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cryptsteps",
		Level:           level,
	})
	return logger, closer, nil
}

// session bundles the collaborators of one CLI invocation.
type session struct {
	deps     registry.Deps
	shutdown func()
}

// openSession wires audio, telemetry and logging around settings.
func openSession(ctx context.Context, settings config.Settings, logger *log.Logger) *session {
	s := &session{shutdown: func() {}}

	tracer := telemetry.NoopTracer()
	if telemetry.Enabled() {
		stop, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, running without traces", "error", err)
		} else {
			tracer = telemetry.Tracer("session")
			prev := s.shutdown
			s.shutdown = func() {
				if err := stop(ctx); err != nil {
					logger.Warn("telemetry shutdown failed", "error", err)
				}
				prev()
			}
		}
	}

	// The device is opened even when sound starts muted so the menu toggle
	// can turn it on. --no-audio keeps it closed.
	var sink audio.Sink = audio.Nop{}
	if !flagNoAudio {
		bs := audio.NewBeepSink(audio.Config{
			MasterVolume: settings.Audio.MasterVolume,
			MusicVolume:  settings.Audio.MusicVolume,
		})
		if err := bs.Init(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		} else {
			sink = bs
		}
	}
	if !settings.Audio.Music {
		sink = effectsOnly{sink}
	}
	sound := audio.NewBoundary(sink, logger, settings.Audio.Enabled)

	prev := s.shutdown
	s.shutdown = func() {
		sound.Close()
		prev()
	}

	s.deps = registry.Deps{
		Settings: settings,
		Sound:    sound,
		Logger:   logger,
		Tracer:   tracer,
	}
	return s
}

// effectsOnly drops music requests.
type effectsOnly struct{ audio.Sink }

func (effectsOnly) SetMusic(bool) error { return nil }
