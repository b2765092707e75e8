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

package codegen

// Op is one emitted atom operation. The concrete types below
// are a closed set: LoadOp, MoveOp, StoreOp, GlobalCZOp,
// GlobalRYOp, LocalRZOp, LocalUOp.
type Op interface {
	opKind() string
}

// LoadOp picks up the named atoms from their current SLM
// sites into the moving AOD grid.
type LoadOp struct {
	Atoms []string `json:"atoms"`
}

func (LoadOp) opKind() string { return "load" }

// AtomTarget is one atom's destination during a MoveOp.
type AtomTarget struct {
	Atom string  `json:"atom"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// MoveOp translates every currently-loaded atom named in
// Targets to its new (X, Y) in one parallel transfer, without
// picking up or putting down any atom.
type MoveOp struct {
	Targets []AtomTarget `json:"targets"`
}

func (MoveOp) opKind() string { return "move" }

// StoreOp puts down the named atoms at their current
// (post-move) location into SLM sites.
type StoreOp struct {
	Atoms []string `json:"atoms"`
}

func (StoreOp) opKind() string { return "store" }

// GlobalCZOp applies a global CZ pulse across every named
// Rydberg zone.
type GlobalCZOp struct {
	Zones []string `json:"zones"`
}

func (GlobalCZOp) opKind() string { return "globalCZ" }

// GlobalRYOp applies RY(Theta) to every atom in the circuit.
type GlobalRYOp struct {
	Theta float64 `json:"theta"`
}

func (GlobalRYOp) opKind() string { return "globalRY" }

// LocalRZOp applies RZ(Theta) to a single atom.
type LocalRZOp struct {
	Atom  string  `json:"atom"`
	Theta float64 `json:"theta"`
}

func (LocalRZOp) opKind() string { return "localRZ" }

// LocalUOp applies the general single-qubit rotation
// U(Theta, Phi, Lambda) to a single atom.
type LocalUOp struct {
	Atom   string  `json:"atom"`
	Theta  float64 `json:"theta"`
	Phi    float64 `json:"phi"`
	Lambda float64 `json:"lambda"`
}

func (LocalUOp) opKind() string { return "localU" }
