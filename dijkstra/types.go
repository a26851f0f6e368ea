// SPDX-License-Identifier: MIT

package dijkstra

import "math"

// NoPath is the distance reported when no route exists.
const NoPath int64 = -1

// infinity marks a vertex whose distance is not yet known.
const infinity int64 = math.MaxInt64

// noParent marks a vertex without a predecessor in the shortest-path tree.
const noParent = -1
