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

package reuseanalyzer

import "github.com/atomzone/naqmap/circuit"

// Config holds the (currently empty) reuse analyzer
// configuration.
type Config struct{}

// Analyze computes reuseSets[k] for every two-qubit layer.
// len(layers) == L yields len(reuseSets) == L.
// For k in [0, L-2], reuseSets[k] is
// built from a maximum bipartite matching between layers[k]
// and layers[k+1]: an edge connects a gate pair in layers[k]
// to a gate pair in layers[k+1] iff they share a qubit, and
// every matched pair of gate-pairs contributes its
// intersecting qubits to reuseSets[k]. The final reuseSets[L-1]
// has no following layer to reuse into and is always empty.
func (Config) Analyze(layers []circuit.TwoQubitGateLayer) ([]circuit.QubitSet, error) {
	L := len(layers)
	reuseSets := make([]circuit.QubitSet, L)
	for k := range reuseSets {
		reuseSets[k] = circuit.NewQubitSet()
	}
	for k := 0; k < L-1; k++ {
		left := layers[k]
		right := layers[k+1]
		adj := make([][]int, len(left))
		for i, a := range left {
			for j, b := range right {
				if a.Intersects(b) {
					adj[i] = append(adj[i], j)
				}
			}
		}
		matchLeft, _ := HopcroftKarp(adj, len(right))
		for i, j := range matchLeft {
			if j < 0 {
				continue
			}
			a, b := left[i], right[j]
			for _, q := range []int{a.A, a.B} {
				if b.Has(q) {
					reuseSets[k].Add(q)
				}
			}
		}
	}
	return reuseSets, nil
}
