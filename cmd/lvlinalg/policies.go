// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/traits"
)

type elementResult struct{ ElementType element.Type }

// widenFloat computes float32 sums in float64.
type widenFloat struct{}

func (widenFloat) AdditionElementTraits(a, b element.Type) elementResult {
	if a == element.Float32 && b == element.Float32 {
		return elementResult{element.Float64}
	}

	return elementResult{}
}

const defaultPolicyName = "default"

var policies = map[string]any{
	defaultPolicyName: traits.Default{},
	"widen-float":     widenFloat{},
}

func policyNames() []string {
	names := lo.Keys(policies)
	slices.Sort(names)

	return names
}

// lookupPolicy maps a CLI policy name to a policy value; "" is the default.
func lookupPolicy(name string) (any, error) {
	if name == "" {
		name = defaultPolicyName
	}
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("%q (known: %s): %w", name, strings.Join(policyNames(), ", "), errUnknownPolicy)
	}

	return p, nil
}
