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

package codegen

import (
	"sort"

	"golang.org/x/exp/slices"

	"github.com/atomzone/naqmap/placement"
)

// appendRearrangement emits the load/move/store sequence
// that carries every qubit named in routing from its site in
// "from" to its site in "to", one move-group (one parallel
// transfer) at a time.
func appendRearrangement(dst *[]Op, from placement.Placement, routing placement.Routing, to placement.Placement, atomName func(int) string, parkingOffset float64) {
	for _, group := range routing {
		appendGroupRearrangement(dst, []int(group), from, to, atomName, parkingOffset)
	}
}

// appendGroupRearrangement picks up a single move-group row
// by row in ascending y, offsetting the already-loaded atoms
// before each new row, so that the AOD grid never intersects
// a "ghost spot" (an SLM trap unintentionally swept by the
// moving grid) while later rows are being picked up.
func appendGroupRearrangement(dst *[]Op, group []int, from, to placement.Placement, atomName func(int) string, parkingOffset float64) {
	if len(group) == 0 {
		return
	}

	type rowAtom struct {
		qubit int
		x, y  float64
	}
	rows := map[float64][]rowAtom{}
	for _, q := range group {
		x, y := from[q].Location()
		rows[y] = append(rows[y], rowAtom{q, x, y})
	}
	ys := make([]float64, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Float64s(ys)
	for _, y := range ys {
		slices.SortFunc(rows[y], func(a, b rowAtom) bool { return a.x < b.x })
	}

	type pos struct{ x, y float64 }
	current := map[int]pos{}

	loadRow := func(row []rowAtom) {
		atoms := make([]string, len(row))
		for i, ra := range row {
			atoms[i] = atomName(ra.qubit)
			current[ra.qubit] = pos{ra.x, ra.y}
		}
		*dst = append(*dst, LoadOp{Atoms: atoms})
	}

	loadRow(rows[ys[0]])
	for i := 1; i < len(ys); i++ {
		row := rows[ys[i]]
		newRowXs := map[float64]bool{}
		for _, ra := range row {
			newRowXs[ra.x] = true
		}

		loaded := make([]int, 0, len(current))
		for q := range current {
			loaded = append(loaded, q)
		}
		sort.Ints(loaded)

		targets := make([]AtomTarget, 0, len(loaded))
		for _, q := range loaded {
			p := current[q]
			var np pos
			if newRowXs[p.x] {
				np = pos{p.x, p.y + parkingOffset}
			} else {
				np = pos{p.x + parkingOffset, p.y + parkingOffset}
			}
			targets = append(targets, AtomTarget{Atom: atomName(q), X: np.x, Y: np.y})
			current[q] = np
		}
		*dst = append(*dst, MoveOp{Targets: targets})

		loadRow(row)
	}

	loaded := make([]int, 0, len(current))
	for q := range current {
		loaded = append(loaded, q)
	}
	sort.Ints(loaded)

	finalTargets := make([]AtomTarget, 0, len(loaded))
	storeAtoms := make([]string, 0, len(loaded))
	for _, q := range loaded {
		x, y := to[q].Location()
		finalTargets = append(finalTargets, AtomTarget{Atom: atomName(q), X: x, Y: y})
		storeAtoms = append(storeAtoms, atomName(q))
	}
	*dst = append(*dst, MoveOp{Targets: finalTargets})
	*dst = append(*dst, StoreOp{Atoms: storeAtoms})
}
