// Package cluster finds the connected components of a set of points, where
// two points are connected when they are at most radius apart.
//
// Points are bucketed into a grid with cells of side radius/sqrt(2), so only
// points in nearby cells need to be compared.
// The grid never has more than MaxGridSize cells along each axis.
package cluster

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/reddit/pointsgen/points"
)

// ErrOutOfRange is wrapped by errors for points outside of the unit square.
var ErrOutOfRange = errors.New("cluster: point out of the unit square")

// reach is how many cells away a point within radius can be.
const reach = 2

// MaxGridSize caps the number of cells along each axis.
//
// Radii too small for it get larger cells, which only brings points within
// radius closer in cell distance.
const MaxGridSize = 1 << 20

type cellKey struct {
	i, j int
}

// Grid is a spatial index of points in the unit square.
type Grid struct {
	radius float64
	side   float64
	size   int
	pts    []points.Point
	cells  map[cellKey][]int
}

// NewGrid buckets pts into a grid for radius.
//
// radius must be positive and finite, every point must be in [0, 1) x [0, 1).
func NewGrid(radius float64, pts []points.Point) (*Grid, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("%w: radius must be positive and finite, got %v", points.ErrInvalidArgument, radius)
	}
	side := math.Max(radius/math.Sqrt2, 1.0/MaxGridSize)
	g := &Grid{
		radius: radius,
		side:   side,
		size:   int(math.Ceil(1 / side)),
		pts:    pts,
		cells:  make(map[cellKey][]int),
	}
	for idx, p := range pts {
		if !inUnit(p.X) || !inUnit(p.Y) {
			return nil, fmt.Errorf("%w: #%d %v", ErrOutOfRange, idx, p)
		}
		key := g.cellOf(p)
		g.cells[key] = append(g.cells[key], idx)
	}
	return g, nil
}

func inUnit(v float64) bool {
	return v >= 0 && v < 1
}

func (g *Grid) cellOf(p points.Point) cellKey {
	return cellKey{
		i: g.index(p.X),
		j: g.index(p.Y),
	}
}

func (g *Grid) index(v float64) int {
	i := int(math.Floor(v / g.side))
	if i >= g.size {
		i = g.size - 1
	}
	return i
}

// Size returns the number of cells along each axis.
func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) within(a, b int) bool {
	dx := g.pts[a].X - g.pts[b].X
	dy := g.pts[a].Y - g.pts[b].Y
	return dx*dx+dy*dy <= g.radius*g.radius
}

// Components returns the connected components as groups of point indices.
//
// Indices in a group are ascending, groups are ordered by their first index.
func (g *Grid) Components() [][]int {
	uf := newUnionFind(len(g.pts))
	for key, members := range g.cells {
		for di := -reach; di <= reach; di++ {
			for dj := -reach; dj <= reach; dj++ {
				other, ok := g.cells[cellKey{i: key.i + di, j: key.j + dj}]
				if !ok {
					continue
				}
				for _, a := range members {
					for _, b := range other {
						if a < b && uf.find(a) != uf.find(b) && g.within(a, b) {
							uf.union(a, b)
						}
					}
				}
			}
		}
	}

	groupOf := make(map[int]int)
	var groups [][]int
	for idx := range g.pts {
		root := uf.find(idx)
		gi, ok := groupOf[root]
		if !ok {
			gi = len(groups)
			groupOf[root] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], idx)
	}
	return groups
}

// Components returns the connected components of pts for radius.
//
// See Grid.Components for the order of the result.
func Components(radius float64, pts []points.Point) ([][]int, error) {
	g, err := NewGrid(radius, pts)
	if err != nil {
		return nil, err
	}
	return g.Components(), nil
}

// Sizes returns the size of each group, largest first.
func Sizes(groups [][]int) []int {
	sizes := make([]int, len(groups))
	for i, group := range groups {
		sizes[i] = len(group)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}
