package biome

import (
	"fmt"
	"image/color"
)

// Bucket counts for the lookup table axes.
const (
	MoistureLevels    = 10
	TemperatureLevels = 10
)

// Range is a half-open bucket-index interval [Lo, Hi).
type Range struct {
	Lo int
	Hi int
}

func (r Range) validate(axis string, levels int) error {
	if r.Lo < 0 || r.Hi > levels || r.Lo >= r.Hi {
		return fmt.Errorf("biome: invalid %s range [%d, %d), want 0 <= lo < hi <= %d", axis, r.Lo, r.Hi, levels)
	}
	return nil
}

// Entry specifies one biome of a table: the main biome ignores the ranges,
// sub-biomes overwrite the rectangle Moisture x Temperature.
type Entry struct {
	Name        string
	Color       color.NRGBA
	Tags        []string
	Moisture    Range
	Temperature Range
}

// TableSpec is the nested region specification a Table is built from.
type TableSpec struct {
	Main Entry
	Subs []Entry
}

// Table is the fixed-size (moisture, temperature) bucket lookup. Immutable
// after construction.
type Table struct {
	cells  []*Biome // row-major, moisture rows x temperature columns
	byID   map[int]*Biome
	biomes []*Biome
}

// NewTable fills every cell with the main biome, then overwrites each
// sub-biome rectangle in declaration order, so later entries win overlaps.
func NewTable(spec TableSpec) (*Table, error) {
	if spec.Main.Name == "" {
		return nil, fmt.Errorf("biome: main biome needs a name")
	}

	t := &Table{
		cells: make([]*Biome, MoistureLevels*TemperatureLevels),
		byID:  make(map[int]*Biome, 1+len(spec.Subs)),
	}

	main := t.intern(spec.Main.Name, spec.Main.Color, spec.Main.Tags)
	for i := range t.cells {
		t.cells[i] = main
	}

	for _, sub := range spec.Subs {
		if sub.Name == "" {
			return nil, fmt.Errorf("biome: sub-biome needs a name")
		}
		if err := sub.Moisture.validate("moisture", MoistureLevels); err != nil {
			return nil, fmt.Errorf("%s: %w", sub.Name, err)
		}
		if err := sub.Temperature.validate("temperature", TemperatureLevels); err != nil {
			return nil, fmt.Errorf("%s: %w", sub.Name, err)
		}
		b := t.intern(sub.Name, sub.Color, sub.Tags)
		for m := sub.Moisture.Lo; m < sub.Moisture.Hi; m++ {
			for temp := sub.Temperature.Lo; temp < sub.Temperature.Hi; temp++ {
				t.cells[t.index(m, temp)] = b
			}
		}
	}

	return t, nil
}

func (t *Table) intern(name string, c color.NRGBA, tags []string) *Biome {
	b := New(name, c, tags)
	if existing, ok := t.byID[b.ID]; ok {
		return existing
	}
	t.byID[b.ID] = b
	t.biomes = append(t.biomes, b)
	return b
}

func (t *Table) index(m, temp int) int {
	return m*TemperatureLevels + temp
}

// Evaluate returns the biome for normalized moisture and temperature. Inputs
// are clamped to [0, 1] and bucket indices to table bounds, so the lookup
// never fails.
func (t *Table) Evaluate(moisture, temperature float64) *Biome {
	m := bucket(moisture, MoistureLevels)
	temp := bucket(temperature, TemperatureLevels)
	return t.cells[t.index(m, temp)]
}

func bucket(v float64, levels int) int {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	idx := int(v * float64(levels))
	if idx >= levels {
		idx = levels - 1
	}
	return idx
}

// ByID resolves a biome id to its display metadata.
func (t *Table) ByID(id int) (*Biome, bool) {
	b, ok := t.byID[id]
	return b, ok
}

// Biomes lists the distinct biomes of the table in declaration order.
func (t *Table) Biomes() []*Biome {
	return t.biomes
}
