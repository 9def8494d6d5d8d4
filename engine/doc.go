// SPDX-License-Identifier: MIT

// Package engine describes and implements storage strategies for matrix and
// vector objects.
//
// An engine Type is a value (interned, comparable with ==) that records the
// strategy kind, the element type, static dimensions and layout:
//
//	f23 := engine.MustType(engine.FixedType(element.Float32, 2, 3))
//	dyn := engine.MustType(engine.DynamicType(element.Float64))
//	tv  := engine.MustType(engine.TransposeType(f23)) // transpose<fixed<float32,2,3>>
//
// Types carry capability tags (Traits) and an Effective shape that unwraps
// views. Promotion code looks only at those two, never at a concrete kind.
//
// Run-time engines implement Matrix / Vector (read) and their Mutable and
// Resizable extensions. Owning engines (Fixed, Dynamic, FixedVector,
// DynamicVector) hold a flat typed buffer; views (TransposeView,
// SubmatrixView, RowView, ColumnView) re-index a base engine without copying.
//
// Errors are sentinels matched with errors.Is; accessors never panic on
// user-triggered conditions.
package engine
