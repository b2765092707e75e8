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

// Package circuitio decodes a circuit IR, already split into
// alternating single- and two-qubit gate layers, from JSON:
// a thin decoding edge, not part of the compiler core.
// Package scheduler validates and shapes the decoded IR for
// the core.
package circuitio

import (
	"encoding/json"
	"fmt"

	"github.com/atomzone/naqmap/circuit"
)

// wireOp is the on-disk shape of a circuit.Op.
type wireOp struct {
	Gate   string    `json:"gate"`
	Qubit  int       `json:"qubit"`
	Params []float64 `json:"params,omitempty"`
}

// wireLayer is one layer of the alternating S,T,S,T,...,S
// sequence, tagged by Type ("single" or "two").
type wireLayer struct {
	Type  string   `json:"type"`
	Ops   []wireOp `json:"ops,omitempty"`
	Pairs [][2]int `json:"pairs,omitempty"`
}

type wireCircuit struct {
	NQubits int         `json:"nQubits"`
	Layers  []wireLayer `json:"layers"`
}

// LayerKind tags a decoded layer's position in the alternating
// sequence.
type LayerKind int

const (
	// Single marks a decoded single-qubit gate layer.
	Single LayerKind = iota
	// Two marks a decoded two-qubit gate layer.
	Two
)

// Layer is one decoded layer, still tagged by kind: exactly
// one of Singles or Pairs is meaningful, matching Kind.
type Layer struct {
	Kind    LayerKind
	Singles circuit.SingleQubitGateLayer
	Pairs   circuit.TwoQubitGateLayer
}

// Decode parses a circuit IR from JSON bytes.
func Decode(data []byte) (nQubits int, layers []Layer, err error) {
	var w wireCircuit
	if err := json.Unmarshal(data, &w); err != nil {
		return 0, nil, fmt.Errorf("circuitio: decode: %w", err)
	}
	if w.NQubits <= 0 {
		return 0, nil, fmt.Errorf("circuitio: nQubits must be positive, got %d", w.NQubits)
	}
	layers = make([]Layer, 0, len(w.Layers))
	for i, wl := range w.Layers {
		switch wl.Type {
		case "single":
			ops := make(circuit.SingleQubitGateLayer, len(wl.Ops))
			for j, op := range wl.Ops {
				ops[j] = circuit.Op{Gate: circuit.Gate(op.Gate), Qubit: op.Qubit, Params: op.Params}
			}
			layers = append(layers, Layer{Kind: Single, Singles: ops})
		case "two":
			pairs := make(circuit.TwoQubitGateLayer, len(wl.Pairs))
			for j, p := range wl.Pairs {
				pairs[j] = circuit.Pair{A: p[0], B: p[1]}
			}
			layers = append(layers, Layer{Kind: Two, Pairs: pairs})
		default:
			return 0, nil, fmt.Errorf("circuitio: layer %d: unknown type %q", i, wl.Type)
		}
	}
	return w.NQubits, layers, nil
}

// Encode serializes a decoded layer sequence back to the wire
// format Decode accepts, mainly used by tests and round-trip
// tooling.
func Encode(nQubits int, layers []Layer) ([]byte, error) {
	w := wireCircuit{NQubits: nQubits}
	for _, l := range layers {
		switch l.Kind {
		case Single:
			wl := wireLayer{Type: "single"}
			for _, op := range l.Singles {
				wl.Ops = append(wl.Ops, wireOp{Gate: string(op.Gate), Qubit: op.Qubit, Params: op.Params})
			}
			w.Layers = append(w.Layers, wl)
		case Two:
			wl := wireLayer{Type: "two"}
			for _, p := range l.Pairs {
				wl.Pairs = append(wl.Pairs, [2]int{p.A, p.B})
			}
			w.Layers = append(w.Layers, wl)
		default:
			return nil, fmt.Errorf("circuitio: encode: unknown layer kind %d", l.Kind)
		}
	}
	return json.MarshalIndent(w, "", "  ")
}
