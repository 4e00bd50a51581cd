package climb

import (
	"cmp"
	"math"
	"slices"

	"github.com/vovakirdan/skyclimb/internal/config"
)

// RealGhost marks the height reached by the previous run.
type RealGhost struct {
	Y       float64
	Score   int
	Visible bool
	Phase   float64
}

// FakeGhost is a synthetic "other player" height marker.
type FakeGhost struct {
	Name  string
	Y     float64
	Score int
	Phase float64
	Color string
	Style int
}

// Population is the set of markers generated for one run.
type Population struct {
	Real  RealGhost
	Fakes []FakeGhost
}

// Density returns the acceptance probability for a candidate score from a
// piecewise-linear curve. Scores outside the curve take the nearest end
// value. The result never drops below floor.
func Density(curve []config.Breakpoint, floor float64, score int) float64 {
	if len(curve) == 0 {
		return floor
	}
	if score <= curve[0].Score {
		return max(floor, curve[0].Probability)
	}
	for i := 1; i < len(curve); i++ {
		lo, hi := curve[i-1], curve[i]
		if score <= hi.Score {
			t := float64(score-lo.Score) / float64(hi.Score-lo.Score)
			return max(floor, lo.Probability+(hi.Probability-lo.Probability)*t)
		}
	}
	return max(floor, curve[len(curve)-1].Probability)
}

// GhostGenerator scatters markers over the score range. It has its own RNG
// so the world stream does not depend on how many ghosts were drawn.
type GhostGenerator struct {
	cfg   config.GhostConfig
	viewH float64
	scale float64
	rng   *Rand
}

// NewGhostGenerator creates a generator for the given configuration.
func NewGhostGenerator(cfg config.ClimbConfig, rng *Rand) *GhostGenerator {
	return &GhostGenerator{
		cfg:   cfg.Ghosts,
		viewH: cfg.Viewport.Height,
		scale: cfg.Score.Scale,
		rng:   rng,
	}
}

// HeightFor maps a score to the world y where it is reached.
func (g *GhostGenerator) HeightFor(score int) float64 {
	return g.viewH - float64(score)*g.scale
}

// Generate builds the population for a run following one that scored
// lastScore. The sweep draws candidates from the density curve, bands are
// then topped up to their minimums and finally the cap is enforced.
func (g *GhostGenerator) Generate(lastScore int) Population {
	var pop Population
	if lastScore > 0 {
		pop.Real = RealGhost{Y: g.HeightFor(lastScore), Score: lastScore, Visible: true}
	}
	pop.Fakes = make([]FakeGhost, 0, g.cfg.Cap+len(g.cfg.Bands))

	for s := g.cfg.MinScore; s <= g.cfg.MaxScore; s += g.cfg.Step {
		if !g.rng.Chance(Density(g.cfg.Curve, g.cfg.MinDensity, s)) {
			continue
		}
		jitter := g.rng.Intn(2*g.cfg.Jitter) - g.cfg.Jitter
		g.place(&pop, max(g.cfg.FloorScore, s+jitter))
	}

	g.fillBands(&pop)
	g.enforceCap(&pop)
	return pop
}

// place adds a marker at score unless it crowds an existing one.
func (g *GhostGenerator) place(pop *Population, score int) bool {
	y := g.HeightFor(score)
	if pop.Real.Visible && math.Abs(y-pop.Real.Y) < g.cfg.RealSpacing {
		return false
	}
	for _, f := range pop.Fakes {
		if math.Abs(y-f.Y) < g.cfg.FakeSpacing {
			return false
		}
	}

	name := Pick(g.rng, g.cfg.Prefixes)
	suffix := Pick(g.rng, g.cfg.Suffixes)
	if g.rng.Chance(g.cfg.SuffixChance) {
		name += suffix
	}
	pop.Fakes = append(pop.Fakes, FakeGhost{
		Name:  name,
		Y:     y,
		Score: score,
		Phase: g.rng.Float64() * 2 * math.Pi,
		Color: Pick(g.rng, g.cfg.Colors),
		Style: g.rng.Intn(g.cfg.Styles),
	})
	return true
}

// fillBands injects markers into bands below their minimum count. Each
// missing marker gets a bounded number of placement attempts.
func (g *GhostGenerator) fillBands(pop *Population) {
	retries := max(1, g.cfg.Retries)
	for _, b := range g.cfg.Bands {
		count := countInBand(pop.Fakes, b)
		for count < b.Count {
			placed := false
			for range retries {
				if g.place(pop, b.Min+g.rng.Intn(b.Max-b.Min)) {
					placed = true
					break
				}
			}
			if !placed {
				break
			}
			count++
		}
	}
}

// enforceCap evicts the lowest markers above the cap, skipping any whose
// removal would leave a band under its minimum.
func (g *GhostGenerator) enforceCap(pop *Population) {
	excess := len(pop.Fakes) - g.cfg.Cap
	if excess <= 0 {
		return
	}

	// Highest first: smaller y is higher up.
	slices.SortStableFunc(pop.Fakes, func(a, b FakeGhost) int {
		return cmp.Compare(a.Y, b.Y)
	})

	counts := BandCounts(pop.Fakes, g.cfg.Bands)
	evict := make([]bool, len(pop.Fakes))
	for i := len(pop.Fakes) - 1; i >= 0 && excess > 0; i-- {
		if g.protected(pop.Fakes[i], counts) {
			continue
		}
		for bi, b := range g.cfg.Bands {
			if inBand(pop.Fakes[i].Score, b) {
				counts[bi]--
			}
		}
		evict[i] = true
		excess--
	}

	kept := pop.Fakes[:0]
	for i, f := range pop.Fakes {
		if !evict[i] {
			kept = append(kept, f)
		}
	}
	pop.Fakes = kept
}

func (g *GhostGenerator) protected(f FakeGhost, counts []int) bool {
	for bi, b := range g.cfg.Bands {
		if inBand(f.Score, b) && counts[bi] <= b.Count {
			return true
		}
	}
	return false
}

// Animate advances marker phases by one tick.
func (g *GhostGenerator) Animate(pop *Population) {
	if pop.Real.Visible {
		pop.Real.Phase += 0.1
	}
	for i := range pop.Fakes {
		pop.Fakes[i].Phase += 0.05 + g.rng.Float64()*0.05
	}
}

// BandCounts returns how many markers fall in each band. Bands are
// inclusive at both ends, so a boundary score counts toward both.
func BandCounts(fakes []FakeGhost, bands []config.Band) []int {
	counts := make([]int, len(bands))
	for i, b := range bands {
		counts[i] = countInBand(fakes, b)
	}
	return counts
}

func countInBand(fakes []FakeGhost, b config.Band) int {
	n := 0
	for _, f := range fakes {
		if inBand(f.Score, b) {
			n++
		}
	}
	return n
}

func inBand(score int, b config.Band) bool {
	return score >= b.Min && score <= b.Max
}
