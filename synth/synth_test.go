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

package synth

import (
	"testing"

	"github.com/atomzone/naqmap/architecture"
	"github.com/atomzone/naqmap/circuit"
	"github.com/atomzone/naqmap/placement"
)

type fakePlacer struct{ placements []placement.Placement }

func (f fakePlacer) Place(*architecture.Architecture, int, []circuit.TwoQubitGateLayer, []circuit.QubitSet) ([]placement.Placement, error) {
	return f.placements, nil
}

type fakeRouter struct{ routings []placement.Routing }

func (f fakeRouter) Route(*architecture.Architecture, []placement.Placement) ([]placement.Routing, error) {
	return f.routings, nil
}

func testArch() *architecture.Architecture {
	storage := &architecture.SLM{Name: "storage", NRows: 2, NCols: 2, LocX: 0, LocY: 0, DX: 1, DY: 1}
	return &architecture.Architecture{SLMs: []*architecture.SLM{storage}, StorageZones: []*architecture.SLM{storage}}
}

func TestSynthesizeWiresPlacerAndRouter(t *testing.T) {
	arch := testArch()
	s := arch.SLMs[0]
	p0 := placement.Placement{architecture.Site{SLM: s, Row: 0, Col: 0}}
	p1 := placement.Placement{architecture.Site{SLM: s, Row: 0, Col: 1}}

	sy := New(fakePlacer{placements: []placement.Placement{p0, p1}}, fakeRouter{routings: []placement.Routing{{{0}}}})
	layers := []circuit.TwoQubitGateLayer{{{A: 0, B: 0}}}
	reuseSets := []circuit.QubitSet{circuit.NewQubitSet()}

	layout, stats, err := sy.Synthesize(arch, 1, layers, reuseSets)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(layout.Placements) != 2 || len(layout.Routings) != 1 {
		t.Fatalf("unexpected layout: %+v", layout)
	}
	if stats.RunID == "" {
		t.Fatal("expected a non-empty RunID")
	}
	if stats.ArchFingerprint == "" {
		t.Fatal("expected a non-empty architecture fingerprint")
	}
}

func TestSynthesizeRejectsMismatchedReuseSets(t *testing.T) {
	arch := testArch()
	sy := New(fakePlacer{}, fakeRouter{})
	layers := []circuit.TwoQubitGateLayer{{{A: 0, B: 1}}}
	if _, _, err := sy.Synthesize(arch, 2, layers, nil); err == nil {
		t.Fatal("expected an error for len(reuseSets) != len(layers)")
	}
}

func TestSynthesizeRejectsWrongPlacementCount(t *testing.T) {
	arch := testArch()
	s := arch.SLMs[0]
	p0 := placement.Placement{architecture.Site{SLM: s, Row: 0, Col: 0}}
	sy := New(fakePlacer{placements: []placement.Placement{p0}}, fakeRouter{})
	layers := []circuit.TwoQubitGateLayer{{{A: 0, B: 0}}}
	reuseSets := []circuit.QubitSet{circuit.NewQubitSet()}
	if _, _, err := sy.Synthesize(arch, 1, layers, reuseSets); err == nil {
		t.Fatal("expected an error when the placer returns the wrong placement count")
	}
}
