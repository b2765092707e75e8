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

// Package scheduler validates a decoded circuit IR against
// the alternating S,T,S,T,...,S shape the compiler requires
// and exposes it as the []SingleQubitGateLayer /
// []TwoQubitGateLayer pair the core consumes. It does not
// implement the gate-grouping heuristics that build layers
// out of a flat gate stream in the first place.
package scheduler

import (
	"fmt"

	"github.com/atomzone/naqmap/circuit"
	"github.com/atomzone/naqmap/circuitio"
)

// Schedule validates that layers already alternates
// single/two/single/.../single (starting and ending on a
// single-qubit layer) and splits it into the two slices the
// core's ReuseAnalyzer, Placer, Router, and CodeGenerator
// expect. It also checks that every two-qubit layer's pairs are
// pairwise disjoint, the precondition the reuse analyzer and
// router rely on without re-checking (see package circuit's
// TwoQubitGateLayer doc).
func Schedule(nQubits int, layers []circuitio.Layer) ([]circuit.SingleQubitGateLayer, []circuit.TwoQubitGateLayer, error) {
	if len(layers) == 0 || layers[0].Kind != circuitio.Single {
		return nil, nil, fmt.Errorf("scheduler: circuit must start with a single-qubit layer (S0)")
	}
	if layers[len(layers)-1].Kind != circuitio.Single {
		return nil, nil, fmt.Errorf("scheduler: circuit must end with a single-qubit layer (S_L)")
	}

	var singles []circuit.SingleQubitGateLayer
	var twos []circuit.TwoQubitGateLayer
	wantKind := circuitio.Single
	for i, l := range layers {
		if l.Kind != wantKind {
			return nil, nil, fmt.Errorf("scheduler: layer %d: expected alternating single/two layers, got out of order", i)
		}
		switch l.Kind {
		case circuitio.Single:
			for _, op := range l.Singles {
				if !op.IsGlobal() && (op.Qubit < 0 || op.Qubit >= nQubits) {
					return nil, nil, fmt.Errorf("scheduler: layer %d: qubit %d out of range [0,%d)", i, op.Qubit, nQubits)
				}
			}
			singles = append(singles, l.Singles)
			wantKind = circuitio.Two
		case circuitio.Two:
			if err := checkDisjoint(l.Pairs); err != nil {
				return nil, nil, fmt.Errorf("scheduler: layer %d: %w", i, err)
			}
			twos = append(twos, l.Pairs)
			wantKind = circuitio.Single
		}
	}
	return singles, twos, nil
}

func checkDisjoint(pairs circuit.TwoQubitGateLayer) error {
	seen := make(map[int]bool, 2*len(pairs))
	for _, p := range pairs {
		for _, q := range []int{p.A, p.B} {
			if seen[q] {
				return fmt.Errorf("qubit %d appears in more than one pair", q)
			}
			seen[q] = true
		}
	}
	return nil
}
