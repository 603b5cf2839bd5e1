package inspect

import (
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/rschmukler/utopia/logger"
)

var (
	mu  sync.RWMutex
	log = logger.NewFromEnv()
)

// SetLogger replaces the logger used by Inspect. Safe for concurrent use.
func SetLogger(l *logger.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// Inspect logs label alongside a deep rendering of v at debug level and
// returns v unchanged.
func Inspect[T any](label string, v T) T {
	mu.RLock()
	l := log
	mu.RUnlock()
	l.WithField("value", Render(v)).Debug(label)
	return v
}

// Render returns a single-line deep rendering of v.
func Render(v any) string {
	cfg := spew.ConfigState{Indent: " ", SortKeys: true, DisableMethods: true}
	return strings.TrimSpace(strings.ReplaceAll(cfg.Sdump(v), "\n", " "))
}
