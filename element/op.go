// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"strings"
)

// Op identifies one of the five arithmetic operators.
type Op uint8

// Operators. The zero Op is invalid.
const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpNeg
)

var opNames = map[Op]string{
	OpAdd: "Addition",
	OpSub: "Subtraction",
	OpMul: "Multiplication",
	OpDiv: "Division",
	OpNeg: "Negation",
}

var opSymbols = map[Op]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpNeg: "unary -",
}

// Ops returns every operator in declaration order.
func Ops() []Op { return []Op{OpAdd, OpSub, OpMul, OpDiv, OpNeg} }

// Valid reports whether o is a known operator.
func (o Op) Valid() bool { return o >= OpAdd && o <= OpNeg }

// Unary reports whether o takes a single operand.
func (o Op) Unary() bool { return o == OpNeg }

// Name returns the capitalised operator name used to build customization
// point names ("Addition", "Negation", ...).
func (o Op) Name() string {
	if n, ok := opNames[o]; ok {
		return n
	}

	return "Invalid"
}

// String returns the operator symbol.
func (o Op) String() string {
	if s, ok := opSymbols[o]; ok {
		return s
	}

	return "op(" + fmt.Sprint(uint8(o)) + ")"
}

// ParseOp accepts a symbol ("+"), a short name ("add") or the full name
// ("addition"), case-insensitively.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add", "addition":
		return OpAdd, nil
	case "-", "sub", "subtraction":
		return OpSub, nil
	case "*", "mul", "multiplication":
		return OpMul, nil
	case "/", "div", "division":
		return OpDiv, nil
	case "neg", "negate", "negation", "unary-":
		return OpNeg, nil
	default:
		return 0, elementErrorf("ParseOp("+s+")", ErrUnknownOp)
	}
}
