package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/labstack/gommon/log"
)

var (
	mu      sync.Mutex
	level   = log.INFO
	output  io.Writer
	loggers = map[string]*log.Logger{}
)

// New returns the component logger for prefix, creating it on first use.
// Loggers created here follow later SetLevel and SetOutput calls.
func New(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[prefix]; ok {
		return l
	}
	l := log.New(prefix)
	l.SetLevel(level)
	if output != nil {
		l.SetOutput(output)
	}
	loggers[prefix] = l
	return l
}

// ParseLevel maps a config string onto a gommon level.
func ParseLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return log.INFO, fmt.Errorf("unknown log level %q", s)
}

// SetLevel changes the level of the global logger and every component logger.
func SetLevel(lvl log.Lvl) {
	mu.Lock()
	defer mu.Unlock()

	level = lvl
	log.SetLevel(lvl)
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
}

// SetOutput redirects every logger to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	output = w
	log.SetOutput(w)
	for _, l := range loggers {
		l.SetOutput(w)
	}
}
