package slogpretty_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/katalvlaran/segmatch/internal/logger/slogpretty"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	opts := slogpretty.PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With(slog.String("cmd", "classify"))

	log.Debug("hidden")
	log.Info("classified", slog.String("label", "wave"), slogpretty.Err(errors.New("none")))

	out := buf.String()
	assert.NotContains(t, out, "hidden", "debug is below the configured level")
	assert.Contains(t, out, "classified")
	assert.Contains(t, out, `"label": "wave"`)
	assert.Contains(t, out, `"cmd": "classify"`)
	assert.Contains(t, out, `"error": "none"`)
}
