package agent

import (
	"randroom/pkg/api"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// localView - локальная картина мира, восстановленная из кадра.
// Всё, чего нет в кадре, бот считает стеной, чтобы не строить пути в неизвестность.
type localView struct {
	width, height int
	known         map[gruid.Point]bool // true - проходимая клетка
	entities      []entityView
	player        *entityView
}

type entityView struct {
	api.EntityView
}

func (e *entityView) p() gruid.Point {
	return gruid.Point{X: e.Pos.X, Y: e.Pos.Y}
}

func newLocalView(frame api.Frame) *localView {
	v := &localView{
		width:  frame.Grid.Width,
		height: frame.Grid.Height,
		known:  make(map[gruid.Point]bool, len(frame.Map)),
	}
	for _, t := range frame.Map {
		v.known[gruid.Point{X: t.X, Y: t.Y}] = !t.IsWall
	}
	for _, e := range frame.Entities {
		v.entities = append(v.entities, entityView{e})
	}
	for i := range v.entities {
		if v.entities[i].Type == api.EntityPlayer {
			v.player = &v.entities[i]
		}
	}
	return v
}

func (v *localView) passable(p gruid.Point) bool {
	return v.known[p]
}

// at - есть ли на клетке сущность вида kind.
func (v *localView) at(p gruid.Point, kind string) bool {
	for i := range v.entities {
		if v.entities[i].Type == kind && v.entities[i].p() == p {
			return true
		}
	}
	return false
}

func (v *localView) all(kind string) []gruid.Point {
	var ps []gruid.Point
	for i := range v.entities {
		if v.entities[i].Type == kind {
			ps = append(ps, v.entities[i].p())
		}
	}
	return ps
}

// nearest - ближайшая сущность вида kind по Чебышеву.
func (v *localView) nearest(kind string) *entityView {
	if v.player == nil {
		return nil
	}
	pp := v.player.p()
	var best *entityView
	bestDist := 0
	for i := range v.entities {
		e := &v.entities[i]
		if e.Type != kind {
			continue
		}
		d := chebyshev(pp, e.p())
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// frontier - известные проходимые клетки рядом с неизвестными, кроме from.
func (v *localView) frontier(from gruid.Point) []gruid.Point {
	var nbs paths.Neighbors
	var ps []gruid.Point
	inMap := func(q gruid.Point) bool {
		return q.X >= 0 && q.Y >= 0 && q.X < v.width && q.Y < v.height
	}
	for p, open := range v.known {
		if !open || p == from {
			continue
		}
		for _, q := range nbs.All(p, inMap) {
			if _, ok := v.known[q]; !ok {
				ps = append(ps, p)
				break
			}
		}
	}
	return ps
}

// mapPath реализует paths.Pather: восемь направлений по известным клеткам.
type mapPath struct {
	view *localView
	nbs  paths.Neighbors
}

func (mp *mapPath) Neighbors(p gruid.Point) []gruid.Point {
	return mp.nbs.All(p, mp.view.passable)
}

func chebyshev(a, b gruid.Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
