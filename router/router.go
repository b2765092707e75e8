// Copyright (C) 2024 The NAQMap Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package router decomposes each placement-to-placement
// transition into a sequence of simultaneously-executable
// atom-move sets, via a conflict-graph independent-set
// decomposition over the movers' movement vectors.
package router

import (
	"fmt"

	"github.com/atomzone/naqmap/architecture"
	"github.com/atomzone/naqmap/heap"
	"github.com/atomzone/naqmap/placement"
)

// Config holds the (currently empty) router configuration.
type Config struct{}

// vector is a mover's movement in architecture coordinates:
// (startX, startY) -> (targetX, targetY).
type vector struct {
	x0, y0, x1, y1 float64
}

// compatible reports whether two movement vectors may share
// a parallel transfer: the AOD grid moves rigidly, so the
// movers' relative x-ordering, y-ordering, and same-row/
// same-column relationships must be preserved from start to
// target.
func compatible(v, w vector) bool {
	return (v.x0 == w.x0) == (v.x1 == w.x1) &&
		(v.x0 < w.x0) == (v.x1 < w.x1) &&
		(v.y0 == w.y0) == (v.y1 == w.y1) &&
		(v.y0 < w.y0) == (v.y1 < w.y1)
}

// Route computes routings[k] for every consecutive pair of
// placements. len(placements) == n yields len(routings) ==
// n-1.
func (Config) Route(arch *architecture.Architecture, placements []placement.Placement) ([]placement.Routing, error) {
	if len(placements) == 0 {
		return nil, nil
	}
	routings := make([]placement.Routing, 0, len(placements)-1)
	for k := 0; k+1 < len(placements); k++ {
		r, err := routeStep(placements[k], placements[k+1])
		if err != nil {
			return nil, fmt.Errorf("router: transition %d: %w", k, err)
		}
		routings = append(routings, r)
	}
	return routings, nil
}

func routeStep(from, to placement.Placement) (placement.Routing, error) {
	movers, err := placement.Movers(from, to)
	if err != nil {
		return nil, err
	}

	vectors := make(map[int]vector, len(movers))
	for q := range movers {
		x0, y0 := from[q].Location()
		x1, y1 := to[q].Location()
		vectors[q] = vector{x0, y0, x1, y1}
	}

	// Order movers by distance descending, tie-break by
	// qubit id ascending, so that long moves get first pick
	// of each independent set.
	dist := make(map[int]float64, len(movers))
	for q := range movers {
		dist[q] = architecture.Distance(from[q], to[q])
	}
	less := func(a, b int) bool {
		if dist[a] != dist[b] {
			return dist[a] > dist[b]
		}
		return a < b
	}
	var ordered []int
	for q := range movers {
		heap.PushSlice(&ordered, q, less)
	}
	sorted := make([]int, 0, len(ordered))
	for len(ordered) > 0 {
		sorted = append(sorted, heap.PopSlice(&ordered, less))
	}

	groups := decompose(sorted, vectors)
	out := make(placement.Routing, len(groups))
	for i, g := range groups {
		out[i] = placement.MoveGroup(g)
	}
	return out, nil
}

// decompose greedily peels independent sets off the
// conflict graph, preserving the descending-distance order
// both across and within groups.
func decompose(order []int, vectors map[int]vector) [][]int {
	remaining := order
	var groups [][]int
	for len(remaining) > 0 {
		var group []int
		conflicted := make(map[int]bool, len(remaining))
		var next []int
		for _, m := range remaining {
			if conflicted[m] {
				next = append(next, m)
				continue
			}
			group = append(group, m)
			for _, other := range remaining {
				if other == m || conflicted[other] {
					continue
				}
				if !compatible(vectors[m], vectors[other]) {
					conflicted[other] = true
				}
			}
		}
		groups = append(groups, group)
		remaining = next
	}
	return groups
}
