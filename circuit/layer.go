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

// Package circuit defines the layer- and qubit-set data
// model that flows between the scheduler, reuse analyzer,
// placer, router, and code generator.
package circuit

import "golang.org/x/exp/slices"

// SingleQubitGateLayer is an ordered list of single-qubit
// operations, global and local, interleaved in emission
// order.
type SingleQubitGateLayer []Op

// TwoQubitGateLayer is a set of disjoint unordered qubit
// pairs. The scheduler collaborator (package scheduler)
// guarantees disjointness; the reuse analyzer and router do
// not re-check it.
type TwoQubitGateLayer []Pair

// QubitSet is a small set of qubit ids, used for reuse sets
// and for the set of movers computed by the router.
type QubitSet map[int]struct{}

// NewQubitSet builds a QubitSet from the given qubits.
func NewQubitSet(qubits ...int) QubitSet {
	s := make(QubitSet, len(qubits))
	for _, q := range qubits {
		s.Add(q)
	}
	return s
}

// Add inserts q into the set.
func (s QubitSet) Add(q int) { s[q] = struct{}{} }

// Contains reports whether q is a member of the set.
func (s QubitSet) Contains(q int) bool {
	_, ok := s[q]
	return ok
}

// Sorted returns the set's members in ascending order.
func (s QubitSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for q := range s {
		out = append(out, q)
	}
	slices.Sort(out)
	return out
}
