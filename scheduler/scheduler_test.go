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

package scheduler

import (
	"testing"

	"github.com/atomzone/naqmap/circuit"
	"github.com/atomzone/naqmap/circuitio"
)

func TestScheduleSplitsAlternatingLayers(t *testing.T) {
	layers := []circuitio.Layer{
		{Kind: circuitio.Single, Singles: circuit.SingleQubitGateLayer{{Gate: circuit.H, Qubit: 0}}},
		{Kind: circuitio.Two, Pairs: circuit.TwoQubitGateLayer{{A: 0, B: 1}}},
		{Kind: circuitio.Single, Singles: circuit.SingleQubitGateLayer{}},
	}
	singles, twos, err := Schedule(2, layers)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(singles) != 2 {
		t.Fatalf("want 2 single-qubit layers, got %d", len(singles))
	}
	if len(twos) != 1 {
		t.Fatalf("want 1 two-qubit layer, got %d", len(twos))
	}
}

func TestScheduleRejectsNonAlternatingLayers(t *testing.T) {
	layers := []circuitio.Layer{
		{Kind: circuitio.Single},
		{Kind: circuitio.Single},
	}
	if _, _, err := Schedule(1, layers); err == nil {
		t.Fatal("expected an error for two consecutive single-qubit layers")
	}
}

func TestScheduleRejectsNonDisjointPairs(t *testing.T) {
	layers := []circuitio.Layer{
		{Kind: circuitio.Single},
		{Kind: circuitio.Two, Pairs: circuit.TwoQubitGateLayer{{A: 0, B: 1}, {A: 1, B: 2}}},
		{Kind: circuitio.Single},
	}
	if _, _, err := Schedule(3, layers); err == nil {
		t.Fatal("expected an error for a qubit appearing in two pairs of the same layer")
	}
}

func TestScheduleRejectsWrongEndpoints(t *testing.T) {
	layers := []circuitio.Layer{
		{Kind: circuitio.Two, Pairs: circuit.TwoQubitGateLayer{{A: 0, B: 1}}},
	}
	if _, _, err := Schedule(2, layers); err == nil {
		t.Fatal("expected an error when the circuit does not start with S0")
	}
}
