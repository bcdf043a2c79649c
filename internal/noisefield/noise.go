// Package noisefield provides deterministic scalar-field samplers over 2D
// point sets: seeded octave noise with pluggable backing algorithms, and a
// positional falloff used to pull map edges toward water.
package noisefield

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// ErrUnknownAlgorithm reports a noise algorithm name with no registered factory.
var ErrUnknownAlgorithm = errors.New("noisefield: unknown algorithm")

// Sampler evaluates one scalar field. Implementations are stateless after
// construction so a sampler can be shared across concurrent generation runs.
type Sampler interface {
	Name() string
	// Sample returns the field value at (x, y), normalized to [0, 1].
	Sample(x, y float64) float64
}

// Factory constructs a Sampler for a seed.
type Factory func(seed int64) Sampler

var algorithms = map[string]Factory{}

// Register adds a sampler factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	algorithms[name] = f
}

// Algorithms returns the registered algorithm names, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Params configures octave noise evaluation.
type Params struct {
	Algorithm   string
	Octaves     int
	Frequency   float64
	Persistence float64 // per-octave amplitude falloff
}

// Validate reports the first configuration problem, if any.
func (p Params) Validate() error {
	if _, ok := algorithms[p.Algorithm]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, p.Algorithm)
	}
	if p.Octaves < 1 {
		return fmt.Errorf("noisefield: octaves must be at least 1, got %d", p.Octaves)
	}
	if p.Frequency <= 0 {
		return fmt.Errorf("noisefield: frequency must be positive, got %g", p.Frequency)
	}
	if p.Persistence <= 0 || p.Persistence > 1 {
		return fmt.Errorf("noisefield: persistence must be in (0, 1], got %g", p.Persistence)
	}
	return nil
}

// Evaluate samples octave noise at every point. The same seed, points and
// params always produce bit-identical output.
func Evaluate(xs, ys []float64, seed int64, p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("noisefield: point slice lengths differ: %d vs %d", len(xs), len(ys))
	}

	sampler := algorithms[p.Algorithm](seed)

	values := make([]float64, len(xs))
	for i := range xs {
		freq := p.Frequency
		amp := 1.0
		total := 0.0
		sum := 0.0
		for o := 0; o < p.Octaves; o++ {
			sum += amp * sampler.Sample(xs[i]*freq, ys[i]*freq)
			total += amp
			freq *= 2
			amp *= p.Persistence
		}
		values[i] = clamp01(sum / total)
	}
	return values, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type perlinSampler struct {
	p *perlin.Perlin
}

func (s perlinSampler) Name() string { return "perlin" }

func (s perlinSampler) Sample(x, y float64) float64 {
	// Noise2D is roughly [-1, 1]; fold into [0, 1].
	return clamp01(0.5 + 0.5*s.p.Noise2D(x, y))
}

type simplexSampler struct {
	n opensimplex.Noise
}

func (s simplexSampler) Name() string { return "simplex" }

func (s simplexSampler) Sample(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

func init() {
	Register("perlin", func(seed int64) Sampler {
		// alpha=2 beta=2 n=3 gives terrain-like noise.
		return perlinSampler{p: perlin.NewPerlin(2, 2, 3, seed)}
	})
	Register("simplex", func(seed int64) Sampler {
		return simplexSampler{n: opensimplex.NewNormalized(seed)}
	})
}
