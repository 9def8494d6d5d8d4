// SPDX-License-Identifier: MIT

package engine

import (
	"strings"
)

// Format renders m row by row as "[a, b]\n[c, d]\n".
// Unreadable cells (never expected for well-formed engines) render as "?".
func Format(m Matrix) string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.Rows(); i++ {
		sb.WriteByte('[')
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			v, err := m.At(i, j)
			if err != nil {
				sb.WriteByte('?')
				continue
			}
			sb.WriteString(v.String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// FormatVector renders v as "[a, b, c]".
func FormatVector(v Vector) string {
	if v == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		x, err := v.AtIndex(i)
		if err != nil {
			sb.WriteByte('?')
			continue
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
