package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New logger ke stderr. jsonOutput false -> console writer yang enak dibaca.
func New(level string, jsonOutput bool) (zerolog.Logger, error) {
	return NewWithWriter(os.Stderr, level, jsonOutput)
}

func NewWithWriter(w io.Writer, level string, jsonOutput bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		// level tidak valid tetap dapat logger info, biar caller masih bisa Fatal()
		lvl = zerolog.InfoLevel
	}
	out := w
	if !jsonOutput {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), err
}
