// Package gelf is a minimal GELF UDP shipper. It implements io.Writer so the
// standard log package can fan out to it with io.MultiWriter.
package gelf

import (
	"encoding/json"
	"net"
	"os"
	"strings"
	"time"
)

const service = "portfolio-api"

// Syslog-style severity levels used by GELF.
const (
	levelError = 3
	levelWarn  = 4
	levelInfo  = 6
)

type Writer struct {
	conn net.Conn
	host string
}

// New creates a GELF UDP writer connected to addr (e.g. "127.0.0.1:12201").
func New(addr string) (*Writer, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, err
	}
	host, _ := os.Hostname()
	if host == "" {
		host = service
	}
	return &Writer{conn: conn, host: host}, nil
}

func (w *Writer) Close() error {
	return w.conn.Close()
}

// Write sends one GELF message per call. The standard log package emits lines
// like "2006/01/02 15:04:05 message\n"; the date prefix and trailing newline
// are stripped so short_message stays clean.
func (w *Writer) Write(p []byte) (int, error) {
	short := strings.TrimRight(string(p), "\n")
	if len(short) > 20 && short[4] == '/' && short[7] == '/' && short[10] == ' ' {
		short = short[20:]
	}

	msg := map[string]any{
		"version":       "1.1",
		"host":          w.host,
		"short_message": short,
		"timestamp":     float64(time.Now().UnixNano()) / 1e9,
		"level":         levelFor(short),
		"_service":      service,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return len(p), nil // never fail the log call
	}

	// Fire-and-forget; a dropped datagram is acceptable for logs.
	w.conn.Write(payload)
	return len(p), nil
}

func levelFor(short string) int {
	switch {
	case strings.HasPrefix(short, "PANIC:"), strings.Contains(short, "Fatal"):
		return levelError
	case strings.HasPrefix(short, "Warning:"):
		return levelWarn
	default:
		return levelInfo
	}
}
