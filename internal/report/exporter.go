package report

import (
	"io"
	"sort"
	"strings"
)

// Exporter renders tables to a writer in one output format.
type Exporter interface {
	Export(w io.Writer, tables []Table) error
	Format() string
}

// Registry holds named exporters.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates an empty exporter registry.
func NewRegistry() *Registry {
	return &Registry{exporters: make(map[string]Exporter)}
}

// Register adds an exporter. Panics on duplicate format.
func (r *Registry) Register(e Exporter) {
	key := strings.ToLower(e.Format())
	if _, ok := r.exporters[key]; ok {
		panic("duplicate exporter format: " + key)
	}
	r.exporters[key] = e
}

// Get returns the exporter for format, or nil.
func (r *Registry) Get(format string) Exporter {
	return r.exporters[strings.ToLower(format)]
}

// Formats lists registered format names, sorted.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.exporters))
	for k := range r.exporters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DefaultRegistry returns a registry with all built-in exporters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TextExporter{})
	r.Register(CSVExporter{})
	r.Register(XLSXExporter{})
	return r
}

// RowCount totals the rows of all tables.
func RowCount(tables []Table) int {
	n := 0
	for _, t := range tables {
		n += len(t.Rows)
	}
	return n
}
