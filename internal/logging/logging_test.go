package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, level)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestInitWritesComponentToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "stagetimer.log")

	cleanup, err := Init(Config{Level: "debug", File: path})
	require.NoError(t, err)

	logger := Component("countdown")
	logger.Info().Int("remaining", 42).Msg("timer started")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	require.True(t, strings.Contains(line, `"component":"countdown"`), line)
	require.True(t, strings.Contains(line, `"remaining":42`), line)
}

func TestInitRejectsBadLevel(t *testing.T) {
	_, err := Init(Config{Level: "chatty"})
	require.Error(t, err)
}
