// Package export renders calculator reports as text, CSV or JSON.
// This package produces human and machine-readable outputs.
package export

import (
	"io"
	"sort"
	"sync"

	"kingshot-calc/core/calculator"
	apperrors "kingshot-calc/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is the human-readable report
	FormatText Format = "text"

	// FormatCSV is one row per breakdown step
	FormatCSV Format = "csv"

	// FormatJSON is the machine-readable report record
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *calculator.Report) error
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates an empty formatter registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry holds the text, CSV and JSON formatters
func DefaultRegistry(opts TextOptions) *Registry {
	r := NewRegistry()
	r.Register(NewTextFormatter(opts))
	r.Register(CSVFormatter{})
	r.Register(JSONFormatter{Indent: true})
	return r
}

// Register adds a formatter, panicking on a duplicate format
func (r *Registry) Register(f Formatter) {
	if err := r.RegisterSafe(f); err != nil {
		panic(err.Error())
	}
}

// RegisterSafe adds a formatter returning error instead of panic
func (r *Registry) RegisterSafe(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[f.Format()]; exists {
		return apperrors.Newf(apperrors.TypeInternal, "formatter %s already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns a formatter for a format type
func (r *Registry) Get(format Format) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[format]
	if !ok {
		return nil, apperrors.UnknownKey("format", string(format), nil)
	}
	return f, nil
}

// Formats returns the registered format names, sorted
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, string(f))
	}
	sort.Strings(out)
	return out
}
