package systems

import (
	"testing"

	"randroom/internal/domain"
)

// wallMap - открытая карта 20×20 со сплошной стеной x=8.
func wallMap() *domain.Map {
	m := openMap(20, 20)
	for y := 0; y < m.Height; y++ {
		m.Tiles[8][y] = domain.WallTile()
	}
	return m
}

func oracles(w, h int) map[string]FOVOracle {
	return map[string]FOVOracle{
		"gruid":      NewGridFOV(w, h),
		"shadowcast": NewShadowcastFOV(w, h),
	}
}

func loadOracle(o FOVOracle, m *domain.Map) {
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			t := m.Tiles[x][y]
			o.SetTransparency(x, y, !t.BlockSight, !t.Blocked)
		}
	}
}

func TestFOVOracles(t *testing.T) {
	for name, o := range oracles(20, 20) {
		t.Run(name, func(t *testing.T) {
			m := wallMap()
			loadOracle(o, m)

			o.Compute(4, 10, 0, true)
			if !o.IsVisible(4, 10) {
				t.Error("origin must be visible")
			}
			if !o.IsVisible(6, 10) || !o.IsVisible(4, 3) {
				t.Error("open floor on our side must be visible")
			}
			if o.IsVisible(12, 10) || o.IsVisible(15, 4) {
				t.Error("cells behind the wall must be hidden")
			}
			if o.IsVisible(-1, 3) || o.IsVisible(20, 20) {
				t.Error("out of bounds is never visible")
			}

			o.Compute(4, 10, 0, false)
			if o.IsVisible(8, 10) {
				t.Error("wall lit with lightWalls=false")
			}
			if !o.IsVisible(4, 10) {
				t.Error("origin must stay visible with lightWalls=false")
			}
		})
	}
}

func TestFOVOracles_Radius(t *testing.T) {
	for name, o := range oracles(30, 30) {
		t.Run(name, func(t *testing.T) {
			loadOracle(o, openMap(30, 30))
			o.Compute(15, 15, 5, true)

			if !o.IsVisible(15, 19) || !o.IsVisible(18, 15) {
				t.Error("cells within radius must be visible")
			}
			if o.IsVisible(15, 21) || o.IsVisible(20, 20) {
				t.Error("cells beyond radius must be hidden")
			}
		})
	}
}

func TestShadowcastLightsWalls(t *testing.T) {
	o := NewShadowcastFOV(20, 20)
	loadOracle(o, wallMap())
	o.Compute(4, 10, 0, true)
	if !o.IsVisible(8, 10) {
		t.Error("facing wall must be lit with lightWalls=true")
	}
}

// countingOracle считает пересчеты.
type countingOracle struct {
	*GridFOV
	computes int
}

func (c *countingOracle) Compute(x, y, radius int, lightWalls bool) {
	c.computes++
	c.GridFOV.Compute(x, y, radius, lightWalls)
}

func TestVisibility_RecomputesOnlyOnMove(t *testing.T) {
	m := wallMap()
	oracle := &countingOracle{GridFOV: NewGridFOV(m.Width, m.Height)}
	v := NewVisibility(oracle, domain.TorchRadius, domain.LightWalls)
	v.Reset(m)

	steps := []struct {
		origin    domain.Position
		recompute bool
	}{
		{domain.Position{X: 4, Y: 10}, true},
		{domain.Position{X: 4, Y: 10}, false},
		{domain.Position{X: 5, Y: 10}, true},
		{domain.Position{X: 5, Y: 10}, false},
	}
	for i, s := range steps {
		if got := v.Update(m, s.origin); got != s.recompute {
			t.Errorf("step %d: Update = %v, want %v", i, got, s.recompute)
		}
	}
	if oracle.computes != 2 {
		t.Errorf("computes = %d, want 2", oracle.computes)
	}

	// Новый уровень сбрасывает кэш даже на той же клетке
	v.Reset(m)
	if !v.Update(m, domain.Position{X: 5, Y: 10}) {
		t.Error("Update after Reset must recompute")
	}
}

func TestVisibility_ExploredIsMonotonic(t *testing.T) {
	m := wallMap()
	v := NewVisibility(NewGridFOV(m.Width, m.Height), domain.TorchRadius, domain.LightWalls)
	v.Reset(m)

	v.Update(m, domain.Position{X: 2, Y: 2})
	if !m.IsExplored(2, 2) || !m.IsExplored(3, 3) {
		t.Fatal("visible cells must become explored")
	}
	if m.IsExplored(12, 2) {
		t.Error("cell behind the wall got explored")
	}

	v.Update(m, domain.Position{X: 6, Y: 17})
	if v.IsVisible(2, 2) {
		t.Fatal("(2,2) should be out of torch range now")
	}
	if !m.IsExplored(2, 2) {
		t.Error("explored flag was lost")
	}
}
