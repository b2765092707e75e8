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

package naplacer

import (
	"testing"

	"github.com/atomzone/naqmap/architecture"
	"github.com/atomzone/naqmap/circuit"
)

func testArch() *architecture.Architecture {
	storage := &architecture.SLM{Name: "storage", NRows: 4, NCols: 4, LocX: 0, LocY: 0, DX: 1, DY: 1}
	entangle := &architecture.SLM{Name: "entangle", NRows: 4, NCols: 4, LocX: 0, LocY: 10, DX: 1, DY: 1}
	return &architecture.Architecture{
		SLMs: []*architecture.SLM{storage, entangle},
		RydbergZones: []*architecture.RydbergZone{
			{Name: "rydberg0", SLMs: []*architecture.SLM{entangle}, MinX: -1, MinY: 9, MaxX: 5, MaxY: 12},
		},
		StorageZones: []*architecture.SLM{storage},
	}
}

// TestPlaceExecutionPlacementInsideRydbergZone checks the
// placer contract: both qubits of every pair sit at sites
// belonging to some Rydberg zone in the execution placement.
func TestPlaceExecutionPlacementInsideRydbergZone(t *testing.T) {
	arch := testArch()
	layers := []circuit.TwoQubitGateLayer{{{A: 0, B: 1}, {A: 2, B: 3}}}
	reuseSets := []circuit.QubitSet{circuit.NewQubitSet()}

	placements, err := Config{}.Place(arch, 4, layers, reuseSets)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if len(placements) != 2 {
		t.Fatalf("want 2 placements (1 layer), got %d", len(placements))
	}
	exec := placements[0]
	zone := arch.RydbergZones[0]
	for q, site := range exec {
		x, y := site.Location()
		if !zone.Contains(x, y) {
			t.Fatalf("qubit %d execution site (%v,%v) not inside Rydberg zone", q, x, y)
		}
	}
}

// TestPlaceReuseKeepsExecutionSite checks that a qubit named in
// a layer's reuse set is not moved between the execution and
// target placement of that layer.
func TestPlaceReuseKeepsExecutionSite(t *testing.T) {
	arch := testArch()
	layers := []circuit.TwoQubitGateLayer{{{A: 0, B: 1}}}
	reuse := circuit.NewQubitSet(0, 1)
	placements, err := Config{}.Place(arch, 2, layers, []circuit.QubitSet{reuse})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	exec, target := placements[0], placements[1]
	for _, q := range []int{0, 1} {
		if !exec[q].Equal(target[q]) {
			t.Fatalf("qubit %d in reuse set moved between execution and target placement", q)
		}
	}
}

func TestInitialPlacementFallsBackForZeroLayers(t *testing.T) {
	arch := testArch()
	initial, err := InitialPlacement(arch, 3, nil)
	if err != nil {
		t.Fatalf("InitialPlacement: %v", err)
	}
	if len(initial) != 3 {
		t.Fatalf("want 3 qubits placed, got %d", len(initial))
	}
}
