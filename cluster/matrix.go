package cluster

import (
	"bufio"
	"fmt"
	"io"

	"github.com/reddit/pointsgen/points"
)

// MaxMatrixSize is the largest grid WriteMatrix renders.
const MaxMatrixSize = 64

// WriteMatrix renders the grid row by row as "<component> (<count>) - "
// cells, where component is the 1-based position of the cell's component in
// groups, 0 for empty cells.
//
// groups must come from g.Components.
// Grids larger than MaxMatrixSize are rejected with ErrInvalidArgument.
func (g *Grid) WriteMatrix(w io.Writer, groups [][]int) error {
	if g.size > MaxMatrixSize {
		return fmt.Errorf("%w: grid of %dx%d cells is too large to render, max %d", points.ErrInvalidArgument, g.size, g.size, MaxMatrixSize)
	}

	label := make([]int, len(g.pts))
	for gi, group := range groups {
		for _, idx := range group {
			label[idx] = gi + 1
		}
	}

	bw := bufio.NewWriter(w)
	for j := 0; j < g.size; j++ {
		for i := 0; i < g.size; i++ {
			members := g.cells[cellKey{i: i, j: j}]
			component := 0
			if len(members) > 0 {
				component = label[members[0]]
			}
			fmt.Fprintf(bw, "%3d (%3d) - ", component, len(members))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
