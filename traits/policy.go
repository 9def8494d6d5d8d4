// SPDX-License-Identifier: MIT

package traits

import (
	"reflect"
)

// Default is the library operation policy: it declares no customization
// points, so every layer applies its built-in rule.
type Default struct{}

var defaultPolicyType = reflect.TypeOf(Default{})

// IsDefault reports whether p is nil, Default or *Default.
func IsDefault(p any) bool {
	if p == nil {
		return true
	}
	rt := reflect.TypeOf(p)
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	return rt == defaultPolicyType
}

// PolicyType returns the reflect.Type recorded in ObjectType.Policy for p.
// A nil policy is reported as Default.
func PolicyType(p any) reflect.Type {
	if p == nil {
		return defaultPolicyType
	}

	return reflect.TypeOf(p)
}

// SelectPolicy picks the policy governing a binary operation:
//   - both operands carry the same policy type: the left policy;
//   - one side is Default: the other side;
//   - otherwise ErrPolicyConflict.
func SelectPolicy(left, right any) (any, error) {
	switch {
	case IsDefault(right):
		if left == nil {
			return Default{}, nil
		}
		return left, nil
	case IsDefault(left):
		return right, nil
	case reflect.TypeOf(left) == reflect.TypeOf(right):
		return left, nil
	default:
		return nil, traitsErrorf("SelectPolicy("+PolicyType(left).String()+", "+PolicyType(right).String()+")", ErrPolicyConflict)
	}
}
