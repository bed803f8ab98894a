package systems

import (
	"randroom/internal/domain"
	"randroom/pkg/logger"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/sirupsen/logrus"
)

// FOVOracle отвечает на вопрос "видна ли клетка" после Compute.
// Алгоритм обзора живет за этим интерфейсом.
type FOVOracle interface {
	SetTransparency(x, y int, seeThrough, walkable bool)
	Compute(x, y, radius int, lightWalls bool)
	IsVisible(x, y int) bool
}

// Sight - только чтение результата обзора (AI, прицеливание, рендер).
type Sight interface {
	IsVisible(x, y int) bool
}

// fovGrid - общая часть реализаций: прозрачность и результат.
type fovGrid struct {
	w, h        int
	transparent []bool
	visible     []bool
}

func newFOVGrid(w, h int) fovGrid {
	return fovGrid{
		w:           w,
		h:           h,
		transparent: make([]bool, w*h),
		visible:     make([]bool, w*h),
	}
}

func (g *fovGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g *fovGrid) idx(x, y int) int {
	return y*g.w + x
}

func (g *fovGrid) SetTransparency(x, y int, seeThrough, _ bool) {
	if g.inBounds(x, y) {
		g.transparent[g.idx(x, y)] = seeThrough
	}
}

func (g *fovGrid) IsVisible(x, y int) bool {
	return g.inBounds(x, y) && g.visible[g.idx(x, y)]
}

func (g *fovGrid) isTransparent(x, y int) bool {
	return g.inBounds(x, y) && g.transparent[g.idx(x, y)]
}

// mark помечает клетку видимой с учетом радиуса и режима освещения стен.
func (g *fovGrid) mark(cx, cy, x, y, radius int, lightWalls bool) {
	if !g.inBounds(x, y) {
		return
	}
	dx, dy := x-cx, y-cy
	if radius > 0 && dx*dx+dy*dy > radius*radius {
		return
	}
	if !lightWalls && !g.isTransparent(x, y) {
		return
	}
	g.visible[g.idx(x, y)] = true
}

// GridFOV - symmetric shadow casting из gruid/rl.
type GridFOV struct {
	fovGrid
	fov *rl.FOV
}

// NewGridFOV создает оракул под карту w×h.
func NewGridFOV(w, h int) *GridFOV {
	return &GridFOV{
		fovGrid: newFOVGrid(w, h),
		fov:     rl.NewFOV(gruid.NewRange(0, 0, w, h)),
	}
}

func (f *GridFOV) Compute(x, y, radius int, lightWalls bool) {
	clear(f.visible)
	if !f.inBounds(x, y) {
		return
	}

	depth := radius
	if depth <= 0 {
		depth = max(f.w, f.h)
	}
	passable := func(p gruid.Point) bool {
		return f.isTransparent(p.X, p.Y)
	}

	src := gruid.Point{X: x, Y: y}
	for _, p := range f.fov.SSCVisionMap(src, depth, passable, false) {
		f.mark(x, y, p.X, p.Y, radius, lightWalls)
	}
	// Свою клетку видим всегда
	f.visible[f.idx(x, y)] = true
}

// Visibility решает, когда пересчитывать обзор, и ведет Explored.
type Visibility struct {
	oracle     FOVOracle
	radius     int
	lightWalls bool

	origin domain.Position
	valid  bool
	log    *logrus.Entry
}

// NewVisibility создает трекер поверх оракула.
func NewVisibility(oracle FOVOracle, radius int, lightWalls bool) *Visibility {
	return &Visibility{
		oracle:     oracle,
		radius:     radius,
		lightWalls: lightWalls,
		log:        logger.Log.WithField("component", "fov_system"),
	}
}

// Reset загружает прозрачность карты в оракул и забывает прошлую точку.
// Вызывается на новом уровне и после загрузки.
func (v *Visibility) Reset(m *domain.Map) {
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			t := m.Tiles[x][y]
			v.oracle.SetTransparency(x, y, !t.BlockSight, !t.Blocked)
		}
	}
	v.valid = false
}

// Update пересчитывает обзор, только если origin сменился.
// Возвращает true, если пересчет был.
func (v *Visibility) Update(m *domain.Map, origin domain.Position) bool {
	if v.valid && origin == v.origin {
		return false
	}
	v.Refresh(m, origin)
	return true
}

// Refresh пересчитывает обзор безусловно и отмечает видимое исследованным.
func (v *Visibility) Refresh(m *domain.Map, origin domain.Position) {
	v.oracle.Compute(origin.X, origin.Y, v.radius, v.lightWalls)
	v.origin = origin
	v.valid = true

	explored := 0
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if v.oracle.IsVisible(x, y) && !m.Tiles[x][y].Explored {
				m.MarkExplored(x, y)
				explored++
			}
		}
	}
	v.log.WithFields(logrus.Fields{
		"origin":       origin,
		"new_explored": explored,
	}).Debug("FOV recomputed.")
}

func (v *Visibility) IsVisible(x, y int) bool {
	return v.oracle.IsVisible(x, y)
}
