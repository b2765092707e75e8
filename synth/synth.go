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

// Package synth composes a placer and a router into the
// placement-and-routing synthesizer: the synthesizer is
// parameterised by a placer capability (place(nQubits,
// layers, reuseSets) -> placements) and a router capability
// (route(placements) -> routings), wired together as plain
// interfaces.
package synth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/atomzone/naqmap/architecture"
	"github.com/atomzone/naqmap/circuit"
	"github.com/atomzone/naqmap/naerr"
	"github.com/atomzone/naqmap/placement"
)

// Placer produces a placements sequence of length 2*len(layers)
// from a circuit's two-qubit layers and the reuse sets computed
// between them. Package naplacer ships one simple
// implementation of this interface.
type Placer interface {
	Place(arch *architecture.Architecture, nQubits int, layers []circuit.TwoQubitGateLayer, reuseSets []circuit.QubitSet) ([]placement.Placement, error)
}

// Router decomposes a placements sequence into the routings
// between consecutive placements. Package router ships the
// conflict-graph implementation of this interface.
type Router interface {
	Route(arch *architecture.Architecture, placements []placement.Placement) ([]placement.Routing, error)
}

// Config nests the opaque placer/router configuration slots.
// PlacerConfig and RouterConfig are kept as raw JSON because
// the core does not know the concrete placer/router types a
// given Synthesizer is built with; the placer and router
// themselves decode their own slot.
type Config struct {
	PlacerConfig json.RawMessage `json:"placerConfig,omitempty"`
	RouterConfig json.RawMessage `json:"routerConfig,omitempty"`
}

// Statistics is the serializable record of wall-clock
// timings, in microseconds, for each synthesis phase,
// plus a RunID distinguishing repeated runs over the same
// circuit and an ArchFingerprint tying the record back to the
// Architecture it was computed against.
type Statistics struct {
	PlacementTime   int64  `json:"placementTime"`
	RoutingTime     int64  `json:"routingTime"`
	TotalTime       int64  `json:"totalTime"`
	RunID           string `json:"runID"`
	ArchFingerprint string `json:"archFingerprint"`
}

// Synthesizer composes a Placer and a Router into the
// placement-and-routing pipeline: reuse analyzer output and
// layers go in, placements and routings come out.
type Synthesizer struct {
	Placer Placer
	Router Router
}

// New builds a Synthesizer from the given placer and router
// capabilities.
func New(p Placer, r Router) *Synthesizer {
	return &Synthesizer{Placer: p, Router: r}
}

// Layout is the synthesizer's output: the placements and
// routings the code generator consumes alongside the
// single-qubit gate layers.
type Layout struct {
	Placements []placement.Placement
	Routings   []placement.Routing
}

// Synthesize runs the placer, then the router, recording
// Statistics across both phase boundaries. arch
// is fingerprinted with blake2b-256 so that a caller can match
// a serialized Statistics record back to the Architecture that
// produced it without re-hashing the architecture by hand.
func (s *Synthesizer) Synthesize(arch *architecture.Architecture, nQubits int, layers []circuit.TwoQubitGateLayer, reuseSets []circuit.QubitSet) (Layout, Statistics, error) {
	if len(reuseSets) != len(layers) {
		return Layout{}, Statistics{}, naerr.InvariantViolation("synth: len(reuseSets) = %d, want %d (len(layers))", len(reuseSets), len(layers))
	}

	start := time.Now()

	placeStart := time.Now()
	placements, err := s.Placer.Place(arch, nQubits, layers, reuseSets)
	if err != nil {
		return Layout{}, Statistics{}, fmt.Errorf("synth: placement: %w", err)
	}
	placementTime := time.Since(placeStart)

	wantPlacements := 2 * len(layers)
	if len(placements) != wantPlacements {
		return Layout{}, Statistics{}, naerr.InvariantViolation("synth: placer returned %d placements, want %d (2*L)", len(placements), wantPlacements)
	}

	routeStart := time.Now()
	routings, err := s.Router.Route(arch, placements)
	if err != nil {
		return Layout{}, Statistics{}, fmt.Errorf("synth: routing: %w", err)
	}
	routingTime := time.Since(routeStart)

	total := time.Since(start)
	stats := Statistics{
		PlacementTime:   placementTime.Microseconds(),
		RoutingTime:     routingTime.Microseconds(),
		TotalTime:       total.Microseconds(),
		RunID:           uuid.New().String(),
		ArchFingerprint: fingerprint(arch),
	}
	return Layout{Placements: placements, Routings: routings}, stats, nil
}

// fingerprint hashes a stable JSON encoding of arch's SLM
// geometry with blake2b-256. It is a cache key, not a
// cryptographic commitment: two architectures with identically
// named, identically shaped SLMs fingerprint the same.
func fingerprint(arch *architecture.Architecture) string {
	h, _ := blake2b.New256(nil)
	enc := json.NewEncoder(h)
	for _, s := range arch.SLMs {
		_ = enc.Encode(s)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
