// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/starlane/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows x cols lattice in row-major order. Cell (r, c) is the
// vertex number r*cols+c; each cell links right, then down.
func Grid[T any](rows, cols int) Constructor[T] {
	return func(g core.MutableGraph[T], cfg Config[T]) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		ids, err := addVertices(methodGrid, g, cfg, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err = addEdge(methodGrid, g, cfg, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(methodGrid, g, cfg, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
