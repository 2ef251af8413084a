// Package debuglog is the debug trace file: one zerolog line per event between
// start and end markers.
package debuglog

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	StartMarker = "--- Log Start ---"
	EndMarker   = "--- Log End ---"
)

// File is an open trace file. It is not safe for concurrent use.
type File struct {
	f   *os.File
	log zerolog.Logger
}

// Open truncates path, writes the start marker and returns the sink. Entries
// below level are dropped.
func Open(path string, level zerolog.Level) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("debuglog: %w", err)
	}
	if _, err := io.WriteString(f, StartMarker+"\n"); err != nil {
		f.Close()
		return nil, fmt.Errorf("debuglog: %w", err)
	}
	w := zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: "15:04:05.000"}
	return &File{
		f:   f,
		log: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}, nil
}

// Logger returns the logger writing into the file. After Close it is a no-op
// logger. A nil File also yields a no-op logger.
func (d *File) Logger() zerolog.Logger {
	if d == nil || d.f == nil {
		return zerolog.Nop()
	}
	return d.log
}

// Close writes the end marker and closes the file. Further calls do nothing.
func (d *File) Close() error {
	if d == nil || d.f == nil {
		return nil
	}
	f := d.f
	d.f = nil
	d.log = zerolog.Nop()
	_, werr := io.WriteString(f, EndMarker+"\n")
	if err := f.Close(); err != nil {
		return fmt.Errorf("debuglog: %w", err)
	}
	if werr != nil {
		return fmt.Errorf("debuglog: %w", werr)
	}
	return nil
}
