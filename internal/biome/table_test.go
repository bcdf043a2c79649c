package biome

import (
	"image/color"
	"testing"
)

func entry(name string) Entry {
	return Entry{Name: name, Color: color.NRGBA{A: 255}}
}

func subEntry(name string, m, t Range) Entry {
	e := entry(name)
	e.Moisture = m
	e.Temperature = t
	return e
}

func TestTableOverlapResolution(t *testing.T) {
	spec := TableSpec{
		Main: entry("grassland"),
		Subs: []Entry{
			subEntry("desert", Range{0, 5}, Range{0, 10}),
			subEntry("swamp", Range{3, 8}, Range{0, 10}),
		},
	}
	table, err := NewTable(spec)
	if err != nil {
		t.Fatal(err)
	}

	// Later-declared swamp wins the overlap in moisture buckets [3, 5).
	for m := 3; m < 5; m++ {
		for temp := 0; temp < TemperatureLevels; temp++ {
			got := table.cells[table.index(m, temp)]
			if got.Name != "swamp" {
				t.Fatalf("bucket (%d, %d) = %s, want swamp", m, temp, got.Name)
			}
		}
	}
	for m := 0; m < 3; m++ {
		got := table.cells[table.index(m, 0)]
		if got.Name != "desert" {
			t.Fatalf("bucket (%d, 0) = %s, want desert", m, got.Name)
		}
	}
	for m := 8; m < MoistureLevels; m++ {
		got := table.cells[table.index(m, 0)]
		if got.Name != "grassland" {
			t.Fatalf("bucket (%d, 0) = %s, want grassland", m, got.Name)
		}
	}
}

func TestEvaluateClamps(t *testing.T) {
	table, err := NewTable(TableSpec{Main: entry("grassland")})
	if err != nil {
		t.Fatal(err)
	}
	low := table.Evaluate(-0.5, 1.5)
	ref := table.Evaluate(0, 1)
	if low != ref {
		t.Fatalf("clamped lookup differs: %s vs %s", low.Name, ref.Name)
	}
	if got := table.Evaluate(1, 1); got == nil {
		t.Fatal("upper boundary lookup returned nil")
	}
}

func TestEvaluateBucketEdges(t *testing.T) {
	spec := TableSpec{
		Main: entry("grassland"),
		Subs: []Entry{subEntry("desert", Range{0, 5}, Range{0, 10})},
	}
	table, err := NewTable(spec)
	if err != nil {
		t.Fatal(err)
	}
	// Moisture 0.5 lands in bucket 5, the first grassland bucket.
	if got := table.Evaluate(0.5, 0); got.Name != "grassland" {
		t.Fatalf("bucket edge = %s, want grassland", got.Name)
	}
	if got := table.Evaluate(0.49, 0); got.Name != "desert" {
		t.Fatalf("below bucket edge = %s, want desert", got.Name)
	}
}

func TestNewTableRejectsMalformedRanges(t *testing.T) {
	cases := []Entry{
		subEntry("a", Range{-1, 3}, Range{0, 10}),
		subEntry("b", Range{0, 11}, Range{0, 10}),
		subEntry("c", Range{4, 4}, Range{0, 10}),
		subEntry("d", Range{0, 5}, Range{7, 2}),
		{Moisture: Range{0, 1}, Temperature: Range{0, 1}}, // missing name
	}
	for i, sub := range cases {
		_, err := NewTable(TableSpec{Main: entry("grassland"), Subs: []Entry{sub}})
		if err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
	if _, err := NewTable(TableSpec{}); err == nil {
		t.Fatal("expected error for missing main biome")
	}
}

func TestBiomeIDsStable(t *testing.T) {
	a := New("desert", color.NRGBA{}, nil)
	b := New("desert", color.NRGBA{R: 1}, []string{"arid"})
	if a.ID != b.ID {
		t.Fatalf("same name produced different ids: %d vs %d", a.ID, b.ID)
	}
	c := New("swamp", color.NRGBA{}, nil)
	if a.ID == c.ID {
		t.Fatal("different names produced the same id")
	}
}

func TestByIDAndBiomes(t *testing.T) {
	table, err := NewTable(DefaultTableSpec())
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Biomes()) < 2 {
		t.Fatalf("default table has %d biomes", len(table.Biomes()))
	}
	for _, b := range table.Biomes() {
		got, ok := table.ByID(b.ID)
		if !ok || got != b {
			t.Fatalf("ByID(%d) failed for %s", b.ID, b.Name)
		}
	}
	if _, ok := table.ByID(-12345); ok {
		t.Fatal("unknown id must not resolve")
	}
}

func TestHasTag(t *testing.T) {
	b := New("forest", color.NRGBA{}, []string{"wood", "buildable"})
	if !b.HasTag("wood") || b.HasTag("arid") {
		t.Fatal("tag lookup broken")
	}
}
