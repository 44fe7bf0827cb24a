package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	apperrors "kingshot-calc/internal/errors"
)

// KeyKind distinguishes integer-level tables from named-tier tables
type KeyKind int

const (
	// Levels are ordered numerically
	Levels KeyKind = iota
	// Tiers are ordered by insertion
	Tiers
)

// String returns the kind name
func (k KeyKind) String() string {
	if k == Tiers {
		return "tiers"
	}
	return "levels"
}

// Key is a position in a table. For level tables Ordinal is the level;
// for tier tables it is the tier's index.
type Key struct {
	Ordinal int    `json:"ordinal"`
	ID      string `json:"id"`
	Label   string `json:"label"`
}

// Source is anything the accumulator can walk: a static table or a
// formula. Ordinals in [lower, upper] are contiguous.
type Source interface {
	Name() string
	Schema() Schema
	Kind() KeyKind
	Bounds() (lower, upper int)
	KeyAt(ordinal int) Key
	CostAt(ordinal int) (Record, error)
}

// Entry is one (key, cost) pair
type Entry struct {
	Key  Key
	Cost Record
}

// LevelEntry is the input form of a level table row
type LevelEntry struct {
	Level int
	Cost  Record
}

// Tier is the input form of a tier table row
type Tier struct {
	ID    string
	Label string
	Cost  Record
}

// Option configures a level table
type Option func(*Table)

// Sparse marks a level table as sparse: missing levels are interpolated
func Sparse(policy InterpolationPolicy) Option {
	return func(t *Table) {
		t.policy = policy
	}
}

const interpolationCacheSize = 256

// Table is an ordered, immutable cost table
type Table struct {
	name   string
	schema Schema
	kind   KeyKind
	lower  int
	upper  int
	policy InterpolationPolicy

	ordinals []int
	costs    map[int]Record
	ids      []string
	labels   []string
	cache    *lru.Cache[int, Record]
}

// NewLevelTable builds a table keyed by integer level. lower is the
// starting level and is never costed, so a dense table must cover every
// level in (lower, upper]. A sparse table needs an entry at or below
// lower+1 and one at or above upper.
func NewLevelTable(name string, schema Schema, lower, upper int, entries []LevelEntry, opts ...Option) (*Table, error) {
	if err := schema.Validate(); err != nil {
		return nil, apperrors.Wrapf(apperrors.TypeInternal, err, "table %s", name)
	}
	if lower >= upper {
		return nil, apperrors.Newf(apperrors.TypeInternal, "table %s: lower bound %d must be below upper bound %d", name, lower, upper)
	}

	t := &Table{
		name:   name,
		schema: schema,
		kind:   Levels,
		lower:  lower,
		upper:  upper,
		costs:  make(map[int]Record, len(entries)),
	}
	for _, opt := range opts {
		opt(t)
	}

	for i, e := range entries {
		if i > 0 && e.Level <= entries[i-1].Level {
			return nil, apperrors.Newf(apperrors.TypeInternal, "table %s: level %d is not after level %d", name, e.Level, entries[i-1].Level)
		}
		if e.Level < lower || e.Level > upper {
			if !t.Sparse() {
				return nil, apperrors.Newf(apperrors.TypeInternal, "table %s: level %d outside [%d, %d]", name, e.Level, lower, upper)
			}
		}
		if err := checkRecord(schema, e.Cost); err != nil {
			return nil, apperrors.Wrapf(apperrors.TypeInternal, err, "table %s level %d", name, e.Level)
		}
		t.ordinals = append(t.ordinals, e.Level)
		t.costs[e.Level] = e.Cost.Clone()
	}

	if t.Sparse() {
		if len(t.ordinals) == 0 || t.ordinals[0] > lower+1 || t.ordinals[len(t.ordinals)-1] < upper {
			return nil, apperrors.Newf(apperrors.TypeInternal, "table %s: sparse entries must span levels %d..%d", name, lower+1, upper)
		}
		cache, err := lru.New[int, Record](interpolationCacheSize)
		if err != nil {
			return nil, apperrors.Internal("interpolation cache", err)
		}
		t.cache = cache
	} else {
		for level := lower + 1; level <= upper; level++ {
			if _, ok := t.costs[level]; !ok {
				return nil, apperrors.Newf(apperrors.TypeInternal, "table %s: dense table is missing level %d", name, level)
			}
		}
	}

	return t, nil
}

// NewTierTable builds a table keyed by named tiers in the given order
func NewTierTable(name string, schema Schema, tiers []Tier) (*Table, error) {
	if err := schema.Validate(); err != nil {
		return nil, apperrors.Wrapf(apperrors.TypeInternal, err, "table %s", name)
	}
	if len(tiers) < 2 {
		return nil, apperrors.Newf(apperrors.TypeInternal, "table %s: need at least two tiers", name)
	}

	t := &Table{
		name:   name,
		schema: schema,
		kind:   Tiers,
		lower:  0,
		upper:  len(tiers) - 1,
		costs:  make(map[int]Record, len(tiers)),
	}
	seen := make(map[string]bool, len(tiers)*2)
	for i, tier := range tiers {
		id := strings.TrimSpace(tier.ID)
		if id == "" {
			return nil, apperrors.Newf(apperrors.TypeInternal, "table %s: tier %d has no id", name, i)
		}
		label := tier.Label
		if label == "" {
			label = id
		}
		names := []string{normalize(id)}
		if normalize(label) != normalize(id) {
			names = append(names, normalize(label))
		}
		for _, k := range names {
			if seen[k] {
				return nil, apperrors.Newf(apperrors.TypeInternal, "table %s: duplicate tier %q", name, k)
			}
			seen[k] = true
		}

		if err := checkRecord(schema, tier.Cost); err != nil {
			return nil, apperrors.Wrapf(apperrors.TypeInternal, err, "table %s tier %s", name, id)
		}
		t.ordinals = append(t.ordinals, i)
		t.ids = append(t.ids, id)
		t.labels = append(t.labels, label)
		t.costs[i] = tier.Cost.Clone()
	}
	return t, nil
}

func checkRecord(schema Schema, r Record) error {
	for res, v := range r {
		if !schema.Has(res) {
			return fmt.Errorf("resource %q is not in the schema", res)
		}
		if v.IsNegative() {
			return fmt.Errorf("resource %q is negative (%s)", res, v)
		}
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name returns the table name
func (t *Table) Name() string { return t.name }

// Schema returns the resource vocabulary
func (t *Table) Schema() Schema { return t.schema }

// Kind returns the key kind
func (t *Table) Kind() KeyKind { return t.kind }

// Bounds returns the declared domain in ordinal space
func (t *Table) Bounds() (int, int) { return t.lower, t.upper }

// Sparse reports whether missing levels are interpolated
func (t *Table) Sparse() bool { return t.policy != NoInterpolation }

// Policy returns the interpolation policy
func (t *Table) Policy() InterpolationPolicy { return t.policy }

// KeyAt returns the key for an ordinal
func (t *Table) KeyAt(ordinal int) Key {
	if t.kind == Tiers && ordinal >= 0 && ordinal < len(t.ids) {
		return Key{Ordinal: ordinal, ID: t.ids[ordinal], Label: t.labels[ordinal]}
	}
	s := strconv.Itoa(ordinal)
	return Key{Ordinal: ordinal, ID: s, Label: s}
}

// Resolve finds a tier by id or label, case-insensitively. Level tables
// resolve decimal level strings.
func (t *Table) Resolve(name string) (int, bool) {
	if t.kind == Levels {
		n, err := strconv.Atoi(strings.TrimSpace(name))
		return n, err == nil
	}
	want := normalize(name)
	for i := range t.ids {
		if normalize(t.ids[i]) == want || normalize(t.labels[i]) == want {
			return i, true
		}
	}
	return 0, false
}

// Names returns every resolvable tier name (ids then labels), or the
// listed levels for level tables
func (t *Table) Names() []string {
	if t.kind == Levels {
		out := make([]string, len(t.ordinals))
		for i, o := range t.ordinals {
			out[i] = strconv.Itoa(o)
		}
		return out
	}
	out := make([]string, 0, len(t.ids)*2)
	out = append(out, t.ids...)
	for i, l := range t.labels {
		if l != t.ids[i] {
			out = append(out, l)
		}
	}
	return out
}

// Entries returns the literal rows in table order
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.ordinals))
	for _, o := range t.ordinals {
		out = append(out, Entry{Key: t.KeyAt(o), Cost: t.costs[o].Clone()})
	}
	return out
}

// Has reports whether the table lists ordinal literally
func (t *Table) Has(ordinal int) bool {
	_, ok := t.costs[ordinal]
	return ok
}

// CostAt returns the cost record at ordinal. Dense tables return the
// literal row; sparse tables interpolate missing levels. A miss on a
// dense table means the caller skipped validation.
func (t *Table) CostAt(ordinal int) (Record, error) {
	if cost, ok := t.costs[ordinal]; ok {
		return cost.Clone(), nil
	}
	if !t.Sparse() || ordinal < t.lower || ordinal > t.upper {
		return nil, apperrors.Newf(apperrors.TypeInternal, "table %s has no entry for %s", t.name, t.KeyAt(ordinal).Label)
	}

	if cached, ok := t.cache.Get(ordinal); ok {
		return cached.Clone(), nil
	}
	cost := t.interpolate(ordinal)
	t.cache.Add(ordinal, cost)
	return cost.Clone(), nil
}

// neighbours returns the nearest listed ordinals at or below and at or
// above ordinal. When only one side exists both results name it.
func (t *Table) neighbours(ordinal int) (lo, hi int) {
	i := sort.SearchInts(t.ordinals, ordinal)
	switch {
	case i < len(t.ordinals) && t.ordinals[i] == ordinal:
		return ordinal, ordinal
	case i == 0:
		return t.ordinals[0], t.ordinals[0]
	case i == len(t.ordinals):
		last := t.ordinals[len(t.ordinals)-1]
		return last, last
	default:
		return t.ordinals[i-1], t.ordinals[i]
	}
}
