package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := newLogger("info", &buf)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, log.GetLevel(), zerolog.InfoLevel)

	log.Debug().Msg("hidden")
	log.Info().Str("game", "x").Msg("shown")
	testutil.AssertContains(t, buf.String(), "shown")
	if bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Error("debug message written at info level")
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	t.Parallel()

	_, err := newLogger("loud", &bytes.Buffer{})
	if err == nil {
		t.Error("expected error for unknown level")
	}
}
