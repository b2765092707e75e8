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

// Package archio loads an architecture.Architecture from
// JSON or YAML: a thin, well-tested edge, not part of the
// compiler core.
package archio

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/atomzone/naqmap/architecture"
)

// wireSLM is the on-disk shape of an architecture.SLM.
type wireSLM struct {
	Name  string  `json:"name"`
	NRows int     `json:"nRows"`
	NCols int     `json:"nCols"`
	LocX  float64 `json:"locX"`
	LocY  float64 `json:"locY"`
	DX    float64 `json:"dx"`
	DY    float64 `json:"dy"`
}

// wireRydbergZone is the on-disk shape of a RydbergZone: it
// names its member SLMs by string rather than by pointer.
type wireRydbergZone struct {
	Name string   `json:"name"`
	SLMs []string `json:"slms"`
	MinX float64  `json:"rydbergMinX"`
	MinY float64  `json:"rydbergMinY"`
	MaxX float64  `json:"rydbergMaxX"`
	MaxY float64  `json:"rydbergMaxY"`
}

type wireArchitecture struct {
	SLMs         []wireSLM         `json:"slms"`
	RydbergZones []wireRydbergZone `json:"rydbergZones"`
	StorageZones []string          `json:"storageZones"`
}

// LoadJSON decodes an Architecture from JSON bytes.
func LoadJSON(data []byte) (*architecture.Architecture, error) {
	var w wireArchitecture
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("archio.LoadJSON: %w", err)
	}
	return build(&w)
}

// LoadYAML decodes an Architecture from YAML bytes (also
// accepts plain JSON, which is a YAML subset).
func LoadYAML(data []byte) (*architecture.Architecture, error) {
	var w wireArchitecture
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("archio.LoadYAML: %w", err)
	}
	return build(&w)
}

func build(w *wireArchitecture) (*architecture.Architecture, error) {
	slms := make(map[string]*architecture.SLM, len(w.SLMs))
	arch := &architecture.Architecture{}
	for _, s := range w.SLMs {
		if _, dup := slms[s.Name]; dup {
			return nil, fmt.Errorf("archio: duplicate SLM name %q", s.Name)
		}
		slm := &architecture.SLM{
			Name: s.Name, NRows: s.NRows, NCols: s.NCols,
			LocX: s.LocX, LocY: s.LocY, DX: s.DX, DY: s.DY,
		}
		slms[s.Name] = slm
		arch.SLMs = append(arch.SLMs, slm)
	}
	for _, name := range w.StorageZones {
		slm, ok := slms[name]
		if !ok {
			return nil, fmt.Errorf("archio: storage zone references unknown SLM %q", name)
		}
		arch.StorageZones = append(arch.StorageZones, slm)
	}
	for _, z := range w.RydbergZones {
		zone := &architecture.RydbergZone{
			Name: z.Name, MinX: z.MinX, MinY: z.MinY, MaxX: z.MaxX, MaxY: z.MaxY,
		}
		for _, name := range z.SLMs {
			slm, ok := slms[name]
			if !ok {
				return nil, fmt.Errorf("archio: rydberg zone %q references unknown SLM %q", z.Name, name)
			}
			zone.SLMs = append(zone.SLMs, slm)
		}
		arch.RydbergZones = append(arch.RydbergZones, zone)
	}
	return arch, nil
}

// SiteRef is the on-disk reference to an architecture.Site:
// an SLM name plus a (row, col) coordinate in place of a raw
// SLM pointer. Resolve and Unresolve convert between the two.
type SiteRef struct {
	SLM string `json:"slm"`
	Row int    `json:"row"`
	Col int    `json:"col"`
}

// Resolve looks up ref's named SLM in arch and returns the
// corresponding architecture.Site.
func Resolve(arch *architecture.Architecture, ref SiteRef) (architecture.Site, error) {
	slm := arch.SLMByName(ref.SLM)
	if slm == nil {
		return architecture.Site{}, fmt.Errorf("archio: unknown SLM %q", ref.SLM)
	}
	if !slm.InBounds(ref.Row, ref.Col) {
		return architecture.Site{}, fmt.Errorf("archio: site (%d,%d) out of bounds on SLM %q", ref.Row, ref.Col, ref.SLM)
	}
	return architecture.Site{SLM: slm, Row: ref.Row, Col: ref.Col}, nil
}

// Unresolve converts a Site back to its on-disk reference.
func Unresolve(s architecture.Site) SiteRef {
	name := ""
	if s.SLM != nil {
		name = s.SLM.Name
	}
	return SiteRef{SLM: name, Row: s.Row, Col: s.Col}
}
