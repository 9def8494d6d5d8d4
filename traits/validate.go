// SPDX-License-Identifier: MIT
// Package traits: structural validation of customization points.
//
// A policy customizes one (operator, layer) pair by exposing a callable named
// "<Op><Layer>Traits", e.g. AdditionElementTraits or NegationEngineTraits:
//   - as a method on the policy value, or
//   - as an exported struct field of func type.
//
// The callable takes one descriptor per operand (element.Type for the element
// layer, engine.Type for the engine layer, ObjectType for the arithmetic
// layer) and returns a value R, optionally followed by an error. R must expose
// the layer's required members, each as a field or a niladic method:
//   - element layer:    ElementType element.Type
//   - engine layer:     EngineType  engine.Type
//   - arithmetic layer: ResultType  ObjectType and Apply ApplyFunc
//     (Apply may also be a method with the ApplyFunc signature).
//
// Probing inspects types only. It never calls user code, never panics and
// never returns an error: a malformed point is reported as invalid and the
// resolver falls back to the default rule. A method that could only be
// called through a nil pointer or interface (a nil policy pointer, or a nil
// embedded field it is promoted from) counts as malformed.

package traits

import (
	"reflect"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
)

// layer is one of the three customization layers.
type layer uint8

const (
	layerElement layer = iota + 1
	layerEngine
	layerArithmetic
)

func (l layer) String() string {
	switch l {
	case layerElement:
		return "Element"
	case layerEngine:
		return "Engine"
	default:
		return "Arithmetic"
	}
}

var (
	typeElement = reflect.TypeOf(element.Type{})
	typeEngine  = reflect.TypeOf(engine.Type{})
	typeObject  = reflect.TypeOf(ObjectType{})
	typeApply   = reflect.TypeOf(ApplyFunc(nil))
	typeError   = reflect.TypeOf((*error)(nil)).Elem()
)

// member is a required member of a customization result.
type member struct {
	name string
	typ  reflect.Type
}

var (
	memberElementType = member{"ElementType", typeElement}
	memberEngineType  = member{"EngineType", typeEngine}
	memberResultType  = member{"ResultType", typeObject}
	memberApply       = member{"Apply", typeApply}
)

func (l layer) param() reflect.Type {
	switch l {
	case layerElement:
		return typeElement
	case layerEngine:
		return typeEngine
	default:
		return typeObject
	}
}

func (l layer) members() []member {
	switch l {
	case layerElement:
		return []member{memberElementType}
	case layerEngine:
		return []member{memberEngineType}
	default:
		return []member{memberResultType, memberApply}
	}
}

// point identifies a customization point.
type point struct {
	op    element.Op
	layer layer
}

// name returns "<Op><Layer>Traits".
func (pt point) name() string { return pt.op.Name() + pt.layer.String() + "Traits" }

func (pt point) arity() int {
	if pt.op.Unary() {
		return 1
	}

	return 2
}

// probe is the outcome of inspecting one customization point.
type probe struct {
	present bool          // the policy declares something under the point name
	reason  string        // non-empty when present but malformed
	fn      reflect.Value // the callable, when present and well-formed
}

// valid reports "absent or well-formed".
func (pr probe) valid() bool { return !pr.present || pr.reason == "" }

// usable reports "present and well-formed".
func (pr probe) usable() bool { return pr.present && pr.reason == "" }

func malformed(reason string) probe { return probe{present: true, reason: reason} }

// inspect looks up and structurally checks pt on policy.
func inspect(policy any, pt point) probe {
	if policy == nil || !pt.op.Valid() {
		return probe{}
	}
	pv := reflect.ValueOf(policy)
	name := pt.name()

	if m := pv.MethodByName(name); m.IsValid() {
		if !receiverReachable(pv, name) {
			return malformed("method receiver is reached through a nil pointer or interface")
		}
		return checkSignature(pt, m)
	}

	sv := pv
	for sv.Kind() == reflect.Pointer || sv.Kind() == reflect.Interface {
		if sv.IsNil() {
			return probe{}
		}
		sv = sv.Elem()
	}
	if sv.Kind() != reflect.Struct {
		return probe{}
	}
	sf, ok := sv.Type().FieldByName(name)
	if !ok {
		return probe{}
	}
	fv, err := sv.FieldByIndexErr(sf.Index)
	if err != nil {
		return malformed("field is reached through a nil embedded pointer")
	}
	if !fv.CanInterface() {
		return malformed("field is not exported")
	}
	if fv.Kind() != reflect.Func {
		return malformed("field of type " + fv.Type().String() + " is not a function")
	}
	if fv.IsNil() {
		return probe{}
	}

	return checkSignature(pt, fv)
}

// receiverReachable reports whether method name can be called on v without
// dereferencing a nil pointer or interface. A nil policy pointer counts as
// unreachable, and so does any nil embedded field the method is promoted
// through.
func receiverReachable(v reflect.Value, name string) bool {
	for {
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return false
			}
			v = v.Elem()
			continue
		case reflect.Struct:
			next, ok := promotedFrom(v, name)
			if !ok {
				return true
			}
			v = next
		default:
			return true
		}
	}
}

// promotedFrom returns the anonymous field of struct v that supplies method
// name, following Go's depth order (the first embedding at this level).
func promotedFrom(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		if _, ok := f.Type.MethodByName(name); ok {
			return v.Field(i), true
		}
		// Pointer-receiver methods of an embedded value are promoted to *S.
		if k := f.Type.Kind(); k != reflect.Pointer && k != reflect.Interface {
			if _, ok := reflect.PointerTo(f.Type).MethodByName(name); ok {
				return v.Field(i), true
			}
		}
	}

	return reflect.Value{}, false
}

// checkSignature validates arity, parameter types, result shape and the
// required members of the result type.
func checkSignature(pt point, fn reflect.Value) probe {
	ft := fn.Type()
	if ft.IsVariadic() {
		return malformed("variadic signature")
	}
	if ft.NumIn() != pt.arity() {
		return malformed("wrong arity: " + ft.String())
	}
	want := pt.layer.param()
	for i := 0; i < ft.NumIn(); i++ {
		if ft.In(i) != want {
			return malformed("parameter of type " + ft.In(i).String() + ", want " + want.String())
		}
	}
	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != typeError {
			return malformed("second result must be error")
		}
	default:
		return malformed("wrong number of results: " + ft.String())
	}
	for _, m := range pt.layer.members() {
		if !hasMember(ft.Out(0), m) {
			return malformed("result type " + ft.Out(0).String() + " lacks " + m.name + " " + m.typ.String())
		}
	}

	return probe{present: true, fn: fn}
}

// hasMember reports whether values of type rt expose m as a field or a
// niladic method (or, for func-typed members, a method of that signature).
func hasMember(rt reflect.Type, m member) bool {
	if meth, ok := rt.MethodByName(m.name); ok {
		mt := meth.Type
		if rt.Kind() != reflect.Interface {
			mt = dropReceiver(mt)
		}
		return methodYields(mt, m.typ)
	}
	st := rt
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return false
	}
	f, ok := st.FieldByName(m.name)
	if !ok || !f.IsExported() {
		return false
	}

	return f.Type.AssignableTo(m.typ) || (m.typ.Kind() == reflect.Func && f.Type.ConvertibleTo(m.typ))
}

func methodYields(mt, want reflect.Type) bool {
	if mt.NumIn() == 0 && mt.NumOut() == 1 && mt.Out(0).AssignableTo(want) {
		return true
	}

	return want.Kind() == reflect.Func && mt.ConvertibleTo(want)
}

func dropReceiver(mt reflect.Type) reflect.Type {
	in := make([]reflect.Type, 0, mt.NumIn()-1)
	for i := 1; i < mt.NumIn(); i++ {
		in = append(in, mt.In(i))
	}
	out := make([]reflect.Type, 0, mt.NumOut())
	for i := 0; i < mt.NumOut(); i++ {
		out = append(out, mt.Out(i))
	}

	return reflect.FuncOf(in, out, mt.IsVariadic())
}

// memberValue extracts m from a customization result. ok is false for nil
// results, which count as "no opinion".
func memberValue(v reflect.Value, m member) (reflect.Value, bool) {
	if (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) && v.IsNil() {
		return reflect.Value{}, false
	}
	if mv := v.MethodByName(m.name); mv.IsValid() {
		mt := mv.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 {
			return convertTo(mv.Call(nil)[0], m.typ), true
		}
		return mv.Convert(m.typ), true
	}
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	sf, ok := v.Type().FieldByName(m.name)
	if !ok {
		return reflect.Value{}, false
	}
	fv, err := v.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, false
	}

	return convertTo(fv, m.typ), true
}

func convertTo(v reflect.Value, t reflect.Type) reflect.Value {
	if v.Type() == t {
		return v
	}

	return v.Convert(t)
}

// call invokes a usable probe; a non-nil trailing error is returned as is.
func (pr probe) call(args ...reflect.Value) (reflect.Value, error) {
	out := pr.fn.Call(args)
	if len(out) == 2 && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}

	return out[0], nil
}

// ValidElementTraits reports whether policy p either omits the element
// customization point for op or declares a well-formed one.
func ValidElementTraits(p any, op element.Op) bool {
	return inspect(p, point{op, layerElement}).valid()
}

// ValidEngineTraits is ValidElementTraits for the engine layer.
func ValidEngineTraits(p any, op element.Op) bool {
	return inspect(p, point{op, layerEngine}).valid()
}

// ValidArithmeticTraits is ValidElementTraits for the arithmetic layer.
func ValidArithmeticTraits(p any, op element.Op) bool {
	return inspect(p, point{op, layerArithmetic}).valid()
}

// HasElementTraits reports whether p declares a well-formed element
// customization for op.
func HasElementTraits(p any, op element.Op) bool {
	return inspect(p, point{op, layerElement}).usable()
}

// HasEngineTraits reports whether p declares a well-formed engine
// customization for op.
func HasEngineTraits(p any, op element.Op) bool {
	return inspect(p, point{op, layerEngine}).usable()
}

// HasArithmeticTraits reports whether p declares a well-formed arithmetic
// customization for op.
func HasArithmeticTraits(p any, op element.Op) bool {
	return inspect(p, point{op, layerArithmetic}).usable()
}
