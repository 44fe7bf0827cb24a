// Package calculator defines the calculator contract shared by every
// game system, the report record handed to renderers, and the
// parse → validate → accumulate → project pipeline.
package calculator

import (
	"strings"

	"kingshot-calc/core/accumulate"
	"kingshot-calc/core/piecewise"
	"kingshot-calc/core/table"
	"kingshot-calc/core/timeline"
)

// Calculator is one game-system calculator
type Calculator interface {
	// Name is the registry key ("mastery", "pet")
	Name() string

	// Title is the report heading
	Title() string

	// Description is a one-line summary
	Description() string

	// Calculate validates the raw input and runs the accumulation
	Calculate(in Input) (*Report, error)
}

// Sourced is implemented by calculators whose cost data can be listed.
// Options select among variants (pet rarity, charm type...).
type Sourced interface {
	Source(options map[string]string) (table.Source, error)
}

// Input is the raw form record: strings as typed, so blank and
// unparseable values can be told apart
type Input struct {
	Current    string            `json:"current"`
	Target     string            `json:"target"`
	Income     string            `json:"income,omitempty"`
	Multiplier int               `json:"multiplier,omitempty"`
	Options    map[string]string `json:"options,omitempty"`
}

// Option returns an option value, or def when unset
func (in Input) Option(key, def string) string {
	if v, ok := in.Options[key]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

// Detail is one labelled summary figure
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Report is the plain result record consumed by rendering, persistence
// and export. It is never mutated after Calculate returns.
type Report struct {
	Calculator string                `json:"calculator"`
	Title      string                `json:"title"`
	Input      Input                 `json:"input"`
	Result     *accumulate.Result    `json:"result,omitempty"`
	Buckets    []accumulate.Bucket   `json:"buckets,omitempty"`
	Timeline   *timeline.Projection  `json:"timeline,omitempty"`
	Milestones []piecewise.Milestone `json:"milestones,omitempty"`
	Details    []Detail              `json:"details,omitempty"`
	Tips       []string              `json:"tips,omitempty"`
}

// AddDetail appends a labelled figure
func (r *Report) AddDetail(label, value string) {
	r.Details = append(r.Details, Detail{Label: label, Value: value})
}

// StorageKey is the persistence key for a calculator's last report
func StorageKey(name string) string {
	return name + "_data"
}
