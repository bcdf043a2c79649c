// Package biome classifies terrain cells by discretized moisture and
// temperature through a fixed lookup table built from a nested region
// specification.
package biome

import (
	"hash/fnv"
	"image/color"
)

// Biome is one classification entry. Immutable once constructed.
type Biome struct {
	ID    int
	Name  string
	Color color.NRGBA
	Tags  []string
}

// New derives a Biome whose ID is a stable hash of its name, so the same
// specification always yields the same IDs across runs.
func New(name string, c color.NRGBA, tags []string) *Biome {
	return &Biome{
		ID:    nameID(name),
		Name:  name,
		Color: c,
		Tags:  append([]string(nil), tags...),
	}
}

// HasTag reports whether the biome carries the given tag.
func (b *Biome) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func nameID(name string) int {
	h := fnv.New32a()
	h.Write([]byte(name))
	return int(h.Sum32())
}
