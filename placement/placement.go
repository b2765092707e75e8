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

// Package placement defines the Placement and Routing data
// model: where each logical qubit sits at a given layer
// boundary, and how atoms move between consecutive
// placements.
package placement

import (
	"github.com/atomzone/naqmap/architecture"
	"github.com/atomzone/naqmap/circuit"
	"github.com/atomzone/naqmap/naerr"
)

// Placement is an ordered sequence P[0..n-1] where P[q] is
// the Site holding logical qubit q. All placements for one
// circuit share n and the same qubit identity ordering.
type Placement []architecture.Site

// MoveGroup is a set of qubits moved simultaneously in one
// parallel transfer (pick-up -> move -> put-down). Order is
// significant: it preserves the descending-distance order
// the router discovered the group in.
type MoveGroup []int

// Routing is an ordered sequence of move-groups. The
// concatenation of all move-groups in a Routing equals the
// set of qubits whose Site differs between the two
// placements the Routing connects.
type Routing []MoveGroup

// Movers returns the set of qubits whose Site differs
// between from and to. from and to must have equal length.
func Movers(from, to Placement) (circuit.QubitSet, error) {
	if len(from) != len(to) {
		return nil, naerr.InvariantViolation("placement: mismatched placement lengths %d != %d", len(from), len(to))
	}
	moved := circuit.NewQubitSet()
	for q := range from {
		if !from[q].Equal(to[q]) {
			moved.Add(q)
		}
	}
	return moved, nil
}

// Qubits returns every qubit id appearing in a move-group,
// in the group's emission order.
func (g MoveGroup) Qubits() []int { return []int(g) }

// AllQubits returns the union of every move-group in r, in
// emission order (duplicates cannot occur; move-groups
// within one Routing partition the movers).
func (r Routing) AllQubits() []int {
	var out []int
	for _, g := range r {
		out = append(out, g...)
	}
	return out
}
