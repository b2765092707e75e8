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

// Package codegen translates (placement, routing) pairs and
// single-qubit gate layers into an NAComputation: a concrete
// operation stream an embedding program can execute on the
// zoned hardware.
package codegen

import (
	"fmt"

	"github.com/atomzone/naqmap/architecture"
	"github.com/atomzone/naqmap/circuit"
	"github.com/atomzone/naqmap/naerr"
	"github.com/atomzone/naqmap/placement"
)

// Config is the code generator's configuration.
type Config struct {
	// ParkingOffset is the offset, in architecture units,
	// applied during row-by-row rearrangement to avoid ghost
	// spots. Must be strictly positive and smaller than the
	// architecture's site separations.
	ParkingOffset int `json:"parkingOffset"`
	// WarnUnsupportedGates emits a warning whenever a local
	// gate falls through to LocalUOp instead of LocalRZOp.
	WarnUnsupportedGates bool `json:"warnUnsupportedGates"`
}

// Validate rejects a non-positive ParkingOffset
// (naerr.ErrConfigOutOfRange).
func (c Config) Validate() error {
	if c.ParkingOffset <= 0 {
		return naerr.ConfigOutOfRange("codegen: parkingOffset must be positive, got %d", c.ParkingOffset)
	}
	return nil
}

// Generator emits an NAComputation for one circuit.
type Generator struct {
	Config Config
	// Warn, if non-nil, receives non-fatal diagnostics (gate
	// rewrite fallthrough). Defaults to a no-op.
	Warn func(format string, args ...interface{})
}

func atomName(q int) string { return fmt.Sprintf("q%d", q) }

// Generate builds the NAComputation for nQubits logical
// qubits given the alternating single-qubit layers (length
// L+1), the execution/target placement pairs (length 2L),
// the routings between them (length 2L-1), and initial, the
// placement that fixes each atom's starting coordinates.
// initial must equal placements[0] whenever L >= 1, so the
// first layer's CZ fires without a preceding rearrangement;
// for L == 0 there are no placements at all and initial is
// the only source of atom coordinates.
func (g *Generator) Generate(arch *architecture.Architecture, nQubits int, singleLayers []circuit.SingleQubitGateLayer, initial placement.Placement, placements []placement.Placement, routings []placement.Routing) (*NAComputation, error) {
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	if len(singleLayers) == 0 {
		return nil, naerr.InvariantViolation("codegen: need at least one single-qubit layer (S0)")
	}
	L := len(singleLayers) - 1
	if len(placements) != 2*L {
		return nil, naerr.InvariantViolation("codegen: len(placements) = %d, want %d (2*L)", len(placements), 2*L)
	}
	wantRoutings := 0
	if L > 0 {
		wantRoutings = 2*L - 1
	}
	if len(routings) != wantRoutings {
		return nil, naerr.InvariantViolation("codegen: len(routings) = %d, want %d (2*L-1)", len(routings), wantRoutings)
	}
	if len(initial) != nQubits {
		return nil, naerr.InvariantViolation("codegen: initial placement has %d qubits, want %d", len(initial), nQubits)
	}

	warn := g.Warn
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	offset := float64(g.Config.ParkingOffset)

	comp := &NAComputation{}
	for i, zone := range arch.RydbergZones {
		comp.Zones = append(comp.Zones, Zone{
			Name: fmt.Sprintf("zone_cz%d", i),
			MinX: zone.MinX, MinY: zone.MinY, MaxX: zone.MaxX, MaxY: zone.MaxY,
		})
	}
	minX, minY, maxX, maxY := arch.StorageBounds()
	comp.Zones = append(comp.Zones, Zone{Name: "global", MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY})

	for q := 0; q < nQubits; q++ {
		x, y := initial[q].Location()
		comp.Atoms = append(comp.Atoms, AtomInit{Name: atomName(q), X: x, Y: y})
	}

	var allZoneNames []string
	for i := range arch.RydbergZones {
		allZoneNames = append(allZoneNames, fmt.Sprintf("zone_cz%d", i))
	}

	emitSingle := func(layer circuit.SingleQubitGateLayer) error {
		for _, op := range layer {
			emitted, err := rewriteOp(op, nQubits, atomName, g.Config, warn)
			if err != nil {
				return err
			}
			comp.Ops = append(comp.Ops, emitted)
		}
		return nil
	}

	if err := emitSingle(singleLayers[0]); err != nil {
		return nil, err
	}
	for k := 0; k < L; k++ {
		if k > 0 {
			appendRearrangement(&comp.Ops, placements[2*k-1], routings[2*k-1], placements[2*k], atomName, offset)
		}
		comp.Ops = append(comp.Ops, GlobalCZOp{Zones: allZoneNames})
		appendRearrangement(&comp.Ops, placements[2*k], routings[2*k], placements[2*k+1], atomName, offset)
		if err := emitSingle(singleLayers[k+1]); err != nil {
			return nil, err
		}
	}
	return comp, nil
}
