package catalog

import (
	"strings"

	"github.com/jsphweid/harmonia/formula"
	"github.com/jsphweid/harmonia/instrument"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/util"
	"github.com/pkg/errors"
)

var (
	ErrNotFound  = errors.New("not in catalog")
	ErrDuplicate = errors.New("duplicate catalog key")
)

// Catalog is a read-only registry of named scales, chords and tunings. It is
// built once and safe for concurrent reads afterwards.
type Catalog struct {
	scales  *registry[*formula.Scale]
	chords  *registry[*formula.Chord]
	tunings *registry[*instrument.Tuning]
}

// registry maps ids and aliases, lower-cased, onto values.
type registry[V any] struct {
	kind string
	byID map[string]V
	keys map[string]string
}

func newRegistry[V any](kind string) *registry[V] {
	return &registry[V]{kind: kind, byID: make(map[string]V), keys: make(map[string]string)}
}

func (r *registry[V]) add(id string, aliases []string, v V) error {
	if id == "" {
		return errors.Wrapf(ErrDuplicate, "%s with empty id", r.kind)
	}
	names := append([]string{id}, aliases...)
	for _, name := range names {
		key := strings.ToLower(name)
		if owner, ok := r.keys[key]; ok {
			return errors.Wrapf(ErrDuplicate, "%s %q: %q already names %q", r.kind, id, name, owner)
		}
		r.keys[key] = id
	}
	r.byID[id] = v
	return nil
}

func (r *registry[V]) get(key string) (V, error) {
	id, ok := r.keys[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		var zero V
		return zero, errors.Wrapf(ErrNotFound, "%s %q", r.kind, key)
	}
	return r.byID[id], nil
}

func (r *registry[V]) ids() []string {
	return util.GetKeys(r.byID)
}

func (r *registry[V]) values() []V {
	ids := r.ids()
	res := make([]V, len(ids))
	for i, id := range ids {
		res[i] = r.byID[id]
	}
	return res
}

// Build validates every definition. One bad definition fails the catalog.
func Build(defs *model.Definitions) (*Catalog, error) {
	c := &Catalog{
		scales:  newRegistry[*formula.Scale]("scale"),
		chords:  newRegistry[*formula.Chord]("chord"),
		tunings: newRegistry[*instrument.Tuning]("tuning"),
	}
	for _, d := range defs.Scales {
		s, err := formula.NewScaleBuilder(d.ID).
			Name(d.Name).
			ParseIntervals(d.Intervals).
			Categories(d.Categories...).
			Aliases(d.Aliases...).
			Build()
		if err != nil {
			return nil, err
		}
		if err := c.scales.add(d.ID, d.Aliases, s); err != nil {
			return nil, err
		}
	}
	for _, d := range defs.Chords {
		ch, err := formula.ParseChord(d.ID, d.Name, d.Symbol, d.Intervals)
		if err != nil {
			return nil, err
		}
		ch = ch.WithAliases(d.Aliases...)
		if err := c.chords.add(d.ID, d.Aliases, ch); err != nil {
			return nil, err
		}
	}
	for _, d := range defs.Tunings {
		t, err := instrument.ParseTuning(d.ID, d.Name, d.Instrument, d.Pitches)
		if err != nil {
			return nil, err
		}
		if err := c.tunings.add(d.ID, d.Aliases, t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Scale looks a scale up by id or alias, ignoring case.
func (c *Catalog) Scale(key string) (*formula.Scale, error) {
	return c.scales.get(key)
}

func (c *Catalog) Chord(key string) (*formula.Chord, error) {
	return c.chords.get(key)
}

func (c *Catalog) Tuning(key string) (*instrument.Tuning, error) {
	return c.tunings.get(key)
}

func (c *Catalog) ScaleIDs() []string  { return c.scales.ids() }
func (c *Catalog) ChordIDs() []string  { return c.chords.ids() }
func (c *Catalog) TuningIDs() []string { return c.tunings.ids() }

// Chords returns every chord in id order.
func (c *Catalog) Chords() []*formula.Chord {
	return c.chords.values()
}

// Formula finds key among scales first, then chords.
func (c *Catalog) Formula(key string) (*formula.Formula, error) {
	if s, err := c.Scale(key); err == nil {
		return s.Formula, nil
	}
	if ch, err := c.Chord(key); err == nil {
		return ch.Formula, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "scale or chord %q", key)
}
