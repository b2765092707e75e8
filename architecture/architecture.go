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

// Package architecture describes the zoned neutral-atom
// hardware a circuit is compiled against: SLM trap grids,
// the Rydberg zones used for two-qubit gates, and the
// storage zones atoms rest in between operations. An
// Architecture is process-wide, immutable once built, and
// safe to share by reference across concurrent compilation
// jobs (see package synth).
package architecture

import "math"

// SLM is a rectangular grid of traps: nRows x nCols sites,
// with the (0,0) trap at (LocX, LocY) and spacing (DX, DY)
// between adjacent rows/columns.
type SLM struct {
	Name  string  `json:"name"`
	NRows int     `json:"nRows"`
	NCols int     `json:"nCols"`
	LocX  float64 `json:"locX"`
	LocY  float64 `json:"locY"`
	DX    float64 `json:"dx"`
	DY    float64 `json:"dy"`
}

// Location returns the exact coordinates of trap (row, col)
// on this SLM.
func (s *SLM) Location(row, col int) (x, y float64) {
	return s.LocX + float64(col)*s.DX, s.LocY + float64(row)*s.DY
}

// InBounds reports whether (row, col) names a real trap on s.
func (s *SLM) InBounds(row, col int) bool {
	return row >= 0 && row < s.NRows && col >= 0 && col < s.NCols
}

// RydbergZone is an entangling zone: a bounding rectangle,
// in architecture coordinates, covering one or more SLM
// footprints. A GlobalCZOp applies to every atom resting
// inside a RydbergZone's bounds.
type RydbergZone struct {
	Name string  `json:"name"`
	SLMs []*SLM  `json:"-"`
	MinX float64 `json:"rydbergMinX"`
	MinY float64 `json:"rydbergMinY"`
	MaxX float64 `json:"rydbergMaxX"`
	MaxY float64 `json:"rydbergMaxY"`
}

// Contains reports whether (x, y) falls within z's bounds.
func (z *RydbergZone) Contains(x, y float64) bool {
	return x >= z.MinX && x <= z.MaxX && y >= z.MinY && y <= z.MaxY
}

// Architecture is the complete, immutable hardware
// description for one compilation job.
type Architecture struct {
	SLMs         []*SLM         `json:"slms"`
	RydbergZones []*RydbergZone `json:"rydbergZones"`
	StorageZones []*SLM         `json:"storageZones"`
}

// SLMByName returns the SLM registered under name, or nil.
func (a *Architecture) SLMByName(name string) *SLM {
	for _, s := range a.SLMs {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// StorageBounds returns the bounding rectangle of every
// storage-zone SLM footprint, used by code generation to
// register the "global" zone (see package codegen).
func (a *Architecture) StorageBounds() (minX, minY, maxX, maxY float64) {
	first := true
	for _, s := range a.StorageZones {
		x0, y0 := s.Location(0, 0)
		x1, y1 := s.Location(s.NRows-1, s.NCols-1)
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		if first {
			minX, minY, maxX, maxY = x0, y0, x1, y1
			first = false
			continue
		}
		minX, minY = math.Min(minX, x0), math.Min(minY, y0)
		maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
	}
	return
}

// Site names a single trap: the SLM it belongs to plus a
// (row, col) coordinate. Two sites are equal iff all three
// components are equal; Site carries only an identity
// reference to its SLM, never ownership.
type Site struct {
	SLM *SLM
	Row int
	Col int
}

// Equal reports whether s and o name the same trap.
func (s Site) Equal(o Site) bool {
	return s.SLM == o.SLM && s.Row == o.Row && s.Col == o.Col
}

// Location returns the exact coordinates of s.
func (s Site) Location() (x, y float64) {
	return s.SLM.Location(s.Row, s.Col)
}

// Distance returns a value monotone in the Euclidean
// distance between a and b's site centers. It is used only
// for ordering (router step 2, placement search heuristics)
// and is implemented here as plain Euclidean distance.
func Distance(a, b Site) float64 {
	ax, ay := a.Location()
	bx, by := b.Location()
	dx, dy := ax-bx, ay-by
	return math.Hypot(dx, dy)
}
