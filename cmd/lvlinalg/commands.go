// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlinalg/traits"
)

// app is the state shared by the subcommands.
type app struct {
	cfg      Config
	logLevel string
	out      io.Writer
	errOut   io.Writer
	log      zerolog.Logger
	resolver *traits.Resolver
}

// newRootCmd builds the command tree; cfg supplies flag defaults.
func newRootCmd(cfg Config, out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: cfg, logLevel: cfg.LogLevel.String(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "lvlinalg",
		Short:         "Query result types of matrix arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfg.Output, "output", "o", cfg.Output, "output format: text, yaml or json")
	pf.BoolVar(&a.cfg.HeterogeneousComplex, "heterogeneous-complex", cfg.HeterogeneousComplex,
		"allow complex operands with different component types")
	pf.StringVar(&a.logLevel, "log-level", a.logLevel, "zerolog level for resolver diagnostics")

	root.AddCommand(a.resolveCmd(), a.batchCmd(), a.elementsCmd())

	return root
}

func (a *app) setup() error {
	if !validOutput(a.cfg.Output) {
		return fmt.Errorf("--output %q: %w", a.cfg.Output, errUnknownOutput)
	}
	lvl, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: a.errOut, NoColor: true}).
		Level(lvl).With().Timestamp().Logger()

	opts := []traits.Option{traits.WithLogger(a.log)}
	if a.cfg.HeterogeneousComplex {
		opts = append(opts, traits.WithHeterogeneousComplex())
	}
	a.resolver = traits.NewResolver(opts...)

	return nil
}

func (a *app) resolveCmd() *cobra.Command {
	var policy string
	cmd := &cobra.Command{
		Use:   "resolve <op> <lhs> [rhs]",
		Short: "Resolve the result of one operation",
		Long: "Resolve prints the result element, engine and object type of lhs op rhs.\n" +
			"Operands are engine types such as fixed<float32,2,3>, dynamic<float64,col>,\n" +
			"dynamic_vector<int32>, transpose<fixed<float64,2,3>> or scalar<float64>.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			q := Query{Op: args[0], LHS: args[1], Policy: policy}
			if len(args) == 3 {
				q.RHS = args[2]
			}
			ans := answer(a.resolver, q)
			a.log.Debug().Str("op", q.Op).Str("lhs", q.LHS).Str("rhs", q.RHS).Msg("resolve")
			if err := ans.Err(); err != nil {
				return err
			}

			return render(a.out, a.cfg.Output, ans, writeAnswer)
		},
	}
	cmd.Flags().StringVarP(&policy, "policy", "p", defaultPolicyName,
		"operation policy: "+strings.Join(policyNames(), ", "))

	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Resolve a YAML list of {op, lhs, rhs, policy} queries",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var queries []Query
			if err = yaml.Unmarshal(raw, &queries); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			answers := lo.Map(queries, func(q Query, _ int) Answer { return answer(a.resolver, q) })
			failed := lo.CountBy(answers, func(ans Answer) bool { return ans.Err() != nil })
			a.log.Info().Int("queries", len(queries)).Int("failed", failed).Msg("batch resolved")

			return render(a.out, a.cfg.Output, answers, writeAnswers)
		},
	}
}

func (a *app) elementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List registered element types",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return render(a.out, a.cfg.Output, elementInfos(), writeElements)
		},
	}
}
