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

import (
	"math"

	"github.com/atomzone/naqmap/circuit"
	"github.com/atomzone/naqmap/naerr"
)

// rewriteOp rewrites one single-qubit gate to its emitted
// operation. atomName maps a qubit id to its emitted atom
// name. warn, if non-nil, is called when a local gate falls
// through onto LocalUOp and cfg.WarnUnsupportedGates is set.
func rewriteOp(op circuit.Op, nQubits int, atomName func(int) string, cfg Config, warn func(string, ...interface{})) (Op, error) {
	// On a 1-qubit circuit any apparent "global" operation is
	// treated as local.
	if op.IsGlobal() && nQubits != 1 {
		return rewriteGlobal(op)
	}
	qubit := op.Qubit
	if op.IsGlobal() {
		qubit = 0
	}
	return rewriteLocal(op, atomName(qubit), cfg, warn)
}

func rewriteGlobal(op circuit.Op) (Op, error) {
	switch op.Gate {
	case circuit.RY:
		return GlobalRYOp{Theta: op.Params[0]}, nil
	case circuit.Y:
		return GlobalRYOp{Theta: math.Pi}, nil
	default:
		// Any other global gate type is a scheduler bug: the
		// scheduler is responsible for only emitting global
		// layers the code generator can rewrite.
		return nil, naerr.InvariantViolation("codegen: gate %q cannot be global", op.Gate)
	}
}

func rewriteLocal(op circuit.Op, atom string, cfg Config, warn func(string, ...interface{})) (Op, error) {
	fallback := func(o Op) (Op, error) {
		if cfg.WarnUnsupportedGates && warn != nil {
			warn("codegen: local gate %s on %s falls through to LocalUOp", op.Gate, atom)
		}
		return o, nil
	}
	switch op.Gate {
	case circuit.RZ, circuit.P:
		return LocalRZOp{Atom: atom, Theta: op.Params[0]}, nil
	case circuit.Z:
		return LocalRZOp{Atom: atom, Theta: math.Pi}, nil
	case circuit.S:
		return LocalRZOp{Atom: atom, Theta: math.Pi / 2}, nil
	case circuit.Sdg:
		return LocalRZOp{Atom: atom, Theta: -math.Pi / 2}, nil
	case circuit.T:
		return LocalRZOp{Atom: atom, Theta: math.Pi / 4}, nil
	case circuit.Tdg:
		return LocalRZOp{Atom: atom, Theta: -math.Pi / 4}, nil
	case circuit.U:
		return fallback(LocalUOp{Atom: atom, Theta: op.Params[0], Phi: op.Params[1], Lambda: op.Params[2]})
	case circuit.U2:
		return fallback(LocalUOp{Atom: atom, Theta: math.Pi / 2, Phi: op.Params[0], Lambda: op.Params[1]})
	case circuit.RX:
		return fallback(LocalUOp{Atom: atom, Theta: op.Params[0], Phi: -math.Pi / 2, Lambda: math.Pi / 2})
	case circuit.RY:
		return fallback(LocalUOp{Atom: atom, Theta: op.Params[0], Phi: 0, Lambda: 0})
	case circuit.H:
		return fallback(LocalUOp{Atom: atom, Theta: math.Pi / 2, Phi: 0, Lambda: math.Pi})
	case circuit.X:
		return fallback(LocalUOp{Atom: atom, Theta: math.Pi, Phi: 0, Lambda: math.Pi})
	case circuit.Y:
		return fallback(LocalUOp{Atom: atom, Theta: math.Pi, Phi: math.Pi / 2, Lambda: math.Pi / 2})
	case circuit.V:
		return fallback(LocalUOp{Atom: atom, Theta: -math.Pi / 2, Phi: -math.Pi / 2, Lambda: math.Pi / 2})
	case circuit.Vdg:
		return fallback(LocalUOp{Atom: atom, Theta: math.Pi / 2, Phi: math.Pi / 2, Lambda: math.Pi / 2})
	case circuit.SX:
		return fallback(LocalUOp{Atom: atom, Theta: math.Pi / 2, Phi: -math.Pi / 2, Lambda: math.Pi / 2})
	case circuit.SXdg:
		return fallback(LocalUOp{Atom: atom, Theta: -math.Pi / 2, Phi: -math.Pi / 2, Lambda: math.Pi / 2})
	default:
		return nil, naerr.UnsupportedGate("codegen: gate %q has no rewrite rule", op.Gate)
	}
}
