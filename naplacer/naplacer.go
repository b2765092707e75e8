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

// Package naplacer ships a deterministic round-robin placer:
// for every two-qubit layer it produces an execution
// placement in which both qubits of every pair sit at sites
// belonging to some Rydberg zone, and a target placement
// consistent with the reuse set. It makes no attempt at
// placement quality; it exists to exercise package synth
// end-to-end, not to compete with a real placement search.
package naplacer

import (
	"fmt"

	"github.com/atomzone/naqmap/architecture"
	"github.com/atomzone/naqmap/circuit"
	"github.com/atomzone/naqmap/naerr"
	"github.com/atomzone/naqmap/placement"
)

// Config holds the (currently empty) placer configuration.
type Config struct{}

// siteCycle hands out sites from a fixed pool, round-robin,
// wrapping once every site has been used.
type siteCycle struct {
	sites []architecture.Site
	next  int
}

func newSiteCycle(arch *architecture.Architecture, slms []*architecture.SLM) *siteCycle {
	c := &siteCycle{}
	for _, s := range slms {
		for r := 0; r < s.NRows; r++ {
			for col := 0; col < s.NCols; col++ {
				c.sites = append(c.sites, architecture.Site{SLM: s, Row: r, Col: col})
			}
		}
	}
	return c
}

func (c *siteCycle) take() (architecture.Site, error) {
	if len(c.sites) == 0 {
		return architecture.Site{}, fmt.Errorf("naplacer: no sites available in this zone")
	}
	s := c.sites[c.next%len(c.sites)]
	c.next++
	return s, nil
}

// rydbergSites returns one siteCycle per Rydberg zone, in
// architecture order, so that both qubits of a pair can be
// drawn from the same zone.
func rydbergSites(arch *architecture.Architecture) []*siteCycle {
	cycles := make([]*siteCycle, len(arch.RydbergZones))
	for i, z := range arch.RydbergZones {
		cycles[i] = newSiteCycle(arch, z.SLMs)
	}
	return cycles
}

// Place implements the synth.Placer interface. It assigns each
// two-qubit layer's pairs to Rydberg-zone sites round-robin
// across the available zones (two sites per pair, drawn from
// the same zone so the pair can execute a GlobalCZOp), leaves
// every other qubit at its most recent site, and only moves a
// layer participant back to storage at the layer boundary when
// the reuse set does not ask to keep it loaded.
func (Config) Place(arch *architecture.Architecture, nQubits int, layers []circuit.TwoQubitGateLayer, reuseSets []circuit.QubitSet) ([]placement.Placement, error) {
	if len(arch.RydbergZones) == 0 {
		return nil, naerr.InvariantViolation("naplacer: architecture has no Rydberg zones")
	}
	if len(arch.StorageZones) == 0 {
		return nil, naerr.InvariantViolation("naplacer: architecture has no storage zones")
	}
	if len(reuseSets) != len(layers) {
		return nil, naerr.InvariantViolation("naplacer: len(reuseSets) = %d, want %d", len(reuseSets), len(layers))
	}

	storage := newSiteCycle(arch, arch.StorageZones)
	current := make(placement.Placement, nQubits)
	placed := make([]bool, nQubits)

	assignStorage := func(q int) error {
		s, err := storage.take()
		if err != nil {
			return err
		}
		current[q] = s
		placed[q] = true
		return nil
	}

	out := make([]placement.Placement, 0, 2*len(layers))
	for k, layer := range layers {
		rydberg := rydbergSites(arch)
		exec := make(placement.Placement, nQubits)
		copy(exec, current)

		participants := circuit.NewQubitSet()
		for i, pair := range layer {
			zone := rydberg[i%len(rydberg)]
			for _, q := range []int{pair.A, pair.B} {
				if q < 0 || q >= nQubits {
					return nil, naerr.InvariantViolation("naplacer: layer %d: qubit %d out of range", k, q)
				}
				s, err := zone.take()
				if err != nil {
					return nil, err
				}
				exec[q] = s
				placed[q] = true
				participants.Add(q)
			}
		}
		for q := 0; q < nQubits; q++ {
			if !placed[q] {
				if err := assignStorage(q); err != nil {
					return nil, err
				}
				exec[q] = current[q]
			}
		}
		out = append(out, exec)

		target := make(placement.Placement, nQubits)
		copy(target, exec)
		reuse := reuseSets[k]
		for q := 0; q < nQubits; q++ {
			if !participants.Contains(q) || reuse.Contains(q) {
				continue // stays put, or stays loaded at its execution site
			}
			s, err := storage.take()
			if err != nil {
				return nil, err
			}
			target[q] = s
		}
		out = append(out, target)
		current = target
	}
	return out, nil
}

// InitialPlacement returns the placement each atom starts the
// circuit at. For L >= 1 this must equal placements[0] so that
// code generation's first layer runs without a preceding
// rearrangement (see codegen.Generator.Generate); for L == 0
// (no two-qubit layers at all) atoms simply start at the first
// nQubits storage sites in architecture order.
func InitialPlacement(arch *architecture.Architecture, nQubits int, placements []placement.Placement) (placement.Placement, error) {
	if len(placements) > 0 {
		return placements[0], nil
	}
	storage := newSiteCycle(arch, arch.StorageZones)
	initial := make(placement.Placement, nQubits)
	for q := 0; q < nQubits; q++ {
		s, err := storage.take()
		if err != nil {
			return nil, err
		}
		initial[q] = s
	}
	return initial, nil
}
