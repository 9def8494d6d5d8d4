// SPDX-License-Identifier: MIT

package traits_test

import (
	"errors"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
	"github.com/katalvlaran/lvlinalg/traits"
)

// ---------- well-formed policies ----------

type widened struct{ ElementType element.Type }

// widenFloat declares float32+float32 → float64 for addition (method form).
type widenFloat struct{}

func (widenFloat) AdditionElementTraits(a, b element.Type) widened {
	if a == element.Float32 && b == element.Float32 {
		return widened{element.Float64}
	}

	return widened{}
}

// fieldPolicy supplies the same customization as a func-typed field.
type fieldPolicy struct {
	AdditionElementTraits func(a, b element.Type) widened
}

func newFieldPolicy() *fieldPolicy {
	return &fieldPolicy{AdditionElementTraits: widenFloat{}.AdditionElementTraits}
}

// getter exposes ElementType as a niladic method.
type getter struct{ t element.Type }

func (g getter) ElementType() element.Type { return g.t }

// getterPolicy customizes negation through a getter result.
type getterPolicy struct{}

func (getterPolicy) NegationElementTraits(t element.Type) getter {
	if t.Kind().IsUnsigned() {
		return getter{element.Int64}
	}

	return getter{}
}

var errRefused = errors.New("refused by policy")

// refusingPolicy rejects every division with an error.
type refusingPolicy struct{}

func (refusingPolicy) DivisionElementTraits(_, _ element.Type) (widened, error) {
	return widened{}, errRefused
}

type engineResult struct{ EngineType engine.Type }

// dynamicProducts always yields a dynamic float64 product engine.
type dynamicProducts struct{}

func (dynamicProducts) MultiplicationEngineTraits(_, _ engine.Type) engineResult {
	return engineResult{engine.MustType(engine.DynamicType(element.Float64))}
}

// viewResults illegally asks for a view as a result engine.
type viewResults struct{}

func (viewResults) AdditionEngineTraits(a, _ engine.Type) engineResult {
	return engineResult{engine.MustType(engine.TransposeType(a))}
}

type arithResult struct {
	ResultType traits.ObjectType
	Apply      traits.ApplyFunc
}

// leftWins defines a + b as a copy of a, with a's type.
type leftWins struct{}

func (leftWins) AdditionArithmeticTraits(l, _ traits.ObjectType) arithResult {
	return arithResult{
		ResultType: l,
		Apply: func(a, _ traits.Operand) (traits.Operand, error) {
			m, err := engine.Materialize(a.Matrix)
			if err != nil {
				return traits.Operand{}, err
			}
			return traits.MatrixOperand(m), nil
		},
	}
}

// methodApply carries Apply as a method with the ApplyFunc signature.
type methodApply struct{ rt traits.ObjectType }

func (m methodApply) ResultType() traits.ObjectType { return m.rt }

func (m methodApply) Apply(a, _ traits.Operand) (traits.Operand, error) { return a, nil }

type methodApplyPolicy struct{}

func (methodApplyPolicy) SubtractionArithmeticTraits(l, _ traits.ObjectType) methodApply {
	return methodApply{rt: l}
}

// ---------- malformed policies ----------

// typedefPolicy declares the point as a plain (non-func) field.
type typedefPolicy struct {
	AdditionElementTraits element.Type
}

// arityPolicy takes one operand for a binary operator.
type arityPolicy struct{}

func (arityPolicy) AdditionElementTraits(_ element.Type) widened { return widened{element.Float64} }

// paramPolicy takes engine types on the element layer.
type paramPolicy struct{}

func (paramPolicy) AdditionElementTraits(_, _ engine.Type) widened { return widened{element.Float64} }

// memberPolicy returns a value without an ElementType member.
type memberPolicy struct{}

func (memberPolicy) AdditionElementTraits(_, _ element.Type) struct{ Element element.Type } {
	return struct{ Element element.Type }{element.Float64}
}

// resultsPolicy returns a second result that is not an error.
type resultsPolicy struct{}

func (resultsPolicy) AdditionElementTraits(_, _ element.Type) (widened, int) {
	return widened{element.Float64}, 0
}

// arithMemberPolicy is missing Apply.
type arithMemberPolicy struct{}

func (arithMemberPolicy) AdditionArithmeticTraits(l, _ traits.ObjectType) struct{ ResultType traits.ObjectType } {
	return struct{ ResultType traits.ObjectType }{l}
}

// engineTypedef declares AdditionEngineTraits as a plain value.
type engineTypedef struct{ AdditionEngineTraits engine.Type }

// engineArity takes one engine type for a binary operator.
type engineArity struct{}

func (engineArity) MultiplicationEngineTraits(_ engine.Type) engineResult {
	return engineResult{dynamic(element.Float64)}
}

// engineParams takes element types where engine types are expected.
type engineParams struct{}

func (engineParams) AdditionEngineTraits(_, _ element.Type) engineResult {
	return engineResult{dynamic(element.Float64)}
}

// engineMember returns a result without an EngineType member.
type engineMember struct{}

func (engineMember) MultiplicationEngineTraits(_, _ engine.Type) struct{ Engine engine.Type } {
	return struct{ Engine engine.Type }{dynamic(element.Float64)}
}

// adder is the interface form of widenFloat's customization point.
type adder interface {
	AdditionElementTraits(a, b element.Type) widened
}

// embedsWiden promotes AdditionElementTraits from an embedded pointer.
type embedsWiden struct{ *widenFloat }

// embedsAdder promotes AdditionElementTraits from an embedded interface.
type embedsAdder struct{ adder }

func malformedPolicies() map[string]any {
	return map[string]any{
		"non-func field":       typedefPolicy{AdditionElementTraits: element.Float64},
		"wrong arity":          arityPolicy{},
		"wrong parameters":     paramPolicy{},
		"missing member":       memberPolicy{},
		"non-error 2nd value":  resultsPolicy{},
		"nil pointer receiver": (*widenFloat)(nil),
		"nil embedded pointer": embedsWiden{},
		"nil embedded iface":   embedsAdder{},
		"nil embedded via ptr": &embedsWiden{},
	}
}

// ---------- helpers ----------

// cmpOpts compares descriptors by identity and ignores implementations.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b element.Type) bool { return a == b }),
	cmp.Comparer(func(a, b engine.Type) bool { return a == b }),
	cmp.Comparer(func(a, b reflect.Type) bool { return a == b }),
	cmpopts.IgnoreUnexported(traits.Resolution{}),
}

func fixed(elem element.Type, r, c int) engine.Type {
	return engine.MustType(engine.FixedType(elem, r, c))
}

func dynamic(elem element.Type) engine.Type {
	return engine.MustType(engine.DynamicType(elem))
}

func objectOf(e engine.Type) traits.ObjectType { return traits.TypeOf(e, traits.Default{}) }

func scalarOf(t element.Type) traits.ObjectType {
	o, err := traits.ScalarTypeOf(t, traits.Default{})
	if err != nil {
		panic(err)
	}

	return o
}
