package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the CLI's console logger at the named level. Unknown or empty
// level names fall back to info.
func New(level string) zerolog.Logger {
	return NewWriter(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// NewWriter builds a logger writing to w at the named level.
func NewWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
