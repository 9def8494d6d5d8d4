// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlinalg/element"
	"github.com/katalvlaran/lvlinalg/engine"
	"github.com/katalvlaran/lvlinalg/traits"
)

var (
	errUnknownPolicy  = errors.New("lvlinalg: unknown policy")
	errUnknownOutput  = errors.New("lvlinalg: unknown output format")
	errMissingOperand = errors.New("lvlinalg: binary operator needs two operands")
	errExtraOperand   = errors.New("lvlinalg: negation takes one operand")
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

func validOutput(s string) bool {
	return s == outputText || s == outputYAML || s == outputJSON
}

// Query is one type-level question: the result of lhs op rhs under policy.
// Operands are engine type strings as accepted by engine.ParseType.
type Query struct {
	Op     string `yaml:"op" json:"op"`
	LHS    string `yaml:"lhs" json:"lhs"`
	RHS    string `yaml:"rhs,omitempty" json:"rhs,omitempty"`
	Policy string `yaml:"policy,omitempty" json:"policy,omitempty"`
}

// Answer is the rendered resolution of a Query, or its error.
type Answer struct {
	Query      Query    `yaml:"query" json:"query"`
	Summary    string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Element    string   `yaml:"element,omitempty" json:"element,omitempty"`
	Engine     string   `yaml:"engine,omitempty" json:"engine,omitempty"`
	Result     string   `yaml:"result,omitempty" json:"result,omitempty"`
	Customized []string `yaml:"customized,omitempty" json:"customized,omitempty"`
	Error      string   `yaml:"error,omitempty" json:"error,omitempty"`

	err error
}

// Err returns the resolution error, if any.
func (a Answer) Err() error { return a.err }

// answer resolves q on r. Failures are recorded in the Answer.
func answer(r *traits.Resolver, q Query) Answer {
	res, err := resolveQuery(r, q)
	if err != nil {
		return Answer{Query: q, Error: err.Error(), err: err}
	}

	layers := []lo.Tuple2[string, bool]{
		lo.T2("element", res.Custom.Element),
		lo.T2("engine", res.Custom.Engine),
		lo.T2("arithmetic", res.Custom.Arithmetic),
	}

	return Answer{
		Query:   q,
		Summary: res.String(),
		Element: res.Element.String(),
		Engine:  res.Engine.String(),
		Result:  res.Result.String(),
		Customized: lo.FilterMap(layers, func(t lo.Tuple2[string, bool], _ int) (string, bool) {
			return t.A, t.B
		}),
	}
}

func resolveQuery(r *traits.Resolver, q Query) (*traits.Resolution, error) {
	op, err := element.ParseOp(q.Op)
	if err != nil {
		return nil, err
	}
	p, err := lookupPolicy(q.Policy)
	if err != nil {
		return nil, err
	}
	lt, err := engine.ParseType(q.LHS)
	if err != nil {
		return nil, err
	}
	left := traits.TypeOf(lt, p)

	if op.Unary() {
		if strings.TrimSpace(q.RHS) != "" {
			return nil, errExtraOperand
		}
		return r.ResolveUnary(p, op, left)
	}
	if strings.TrimSpace(q.RHS) == "" {
		return nil, errMissingOperand
	}
	rt, err := engine.ParseType(q.RHS)
	if err != nil {
		return nil, err
	}

	return r.Resolve(p, op, left, traits.TypeOf(rt, p))
}

// ElementInfo describes one registered element type.
type ElementInfo struct {
	Name    string `yaml:"name" json:"name"`
	Kind    string `yaml:"kind" json:"kind"`
	Builtin bool   `yaml:"builtin" json:"builtin"`
}

func elementInfos() []ElementInfo {
	return lo.FilterMap(element.Registered(), func(name string, _ int) (ElementInfo, bool) {
		t, ok := element.Lookup(name)
		return ElementInfo{Name: name, Kind: t.Kind().String(), Builtin: t.IsBuiltin()}, ok
	})
}

// render writes v as YAML, JSON or, for "text", through text.
func render[T any](w io.Writer, format string, v T, text func(io.Writer, T) error) error {
	switch format {
	case outputText:
		return text(w, v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("%q: %w", format, errUnknownOutput)
	}
}

func writeAnswers(w io.Writer, as []Answer) error {
	for _, a := range as {
		if err := writeAnswer(w, a); err != nil {
			return err
		}
	}

	return nil
}

func writeAnswer(w io.Writer, a Answer) error {
	if a.Error != "" {
		_, err := fmt.Fprintf(w, "%s %s %s: error: %s\n", a.Query.LHS, a.Query.Op, a.Query.RHS, a.Error)
		return err
	}
	line := a.Summary
	if len(a.Customized) > 0 {
		line += "  [custom: " + strings.Join(a.Customized, ", ") + "]"
	}
	_, err := fmt.Fprintln(w, line)

	return err
}

func writeElements(w io.Writer, infos []ElementInfo) error {
	for _, e := range infos {
		if _, err := fmt.Fprintf(w, "%-12s %s\n", e.Name, e.Kind); err != nil {
			return err
		}
	}

	return nil
}
