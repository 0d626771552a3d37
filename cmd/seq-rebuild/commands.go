package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"seq-rebuild/internal/config"
	"seq-rebuild/internal/ops"
	"seq-rebuild/internal/suite"
	"seq-rebuild/node"
	"seq-rebuild/primitive"
)

// errSuiteFailed is returned by run when at least one case failed. The report
// has already been printed, so main only sets the exit code.
var errSuiteFailed = errors.New("suite failed")

type app struct {
	configPath string
	verbose    bool
	workers    int

	cfg      *config.Config
	logger   *zap.Logger
	registry *ops.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "seq-rebuild",
		Short: "String and sequence operations on literal data",
		Long: `seq-rebuild evaluates string and sequence operations: trimming, replacing,
percentage parsing, case conversion, flattening, reversing, membership tests
and nested record construction.

Each operation is a subcommand. String parameters are taken verbatim; all other
parameters are YAML values, e.g. '[1, [2, [3]]]', '{a: 1}', '!type boolean'.

Operands starting with '-' must follow '--' so they are not read as flags:

  seq-rebuild percentageParser -- -99%
  seq-rebuild flattenDepth -- '[1, [2]]' -1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w (put operands starting with '-' after --)", err)
	})

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().IntVarP(&a.workers, "workers", "w", 0, "Cases evaluated at once (default: from config)")

	// The tree is built from the default registry; calls go through the
	// registry configured in setup.
	opsGroup := &cobra.Group{ID: "ops", Title: "Operations:"}
	rootCmd.AddGroup(opsGroup)
	for _, op := range ops.Default(ops.Options{}).All() {
		cmd := a.opCmd(op)
		cmd.GroupID = opsGroup.ID
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(a.runCmd())
	rootCmd.AddCommand(a.listCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFile(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("workers") {
		cfg.Workers = a.workers
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.registry = ops.Default(ops.Options{
		MaxNesting:   cfg.MaxNesting,
		DefaultDepth: cfg.DefaultDepth,
	})

	logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Int("workers", cfg.Workers),
		zap.Int("maxNesting", cfg.MaxNesting),
		zap.Int("defaultDepth", cfg.DefaultDepth),
	)

	return nil
}

func (a *app) opCmd(op *ops.Op) *cobra.Command {
	return &cobra.Command{
		Use:   op.Name + " " + usageParams(op),
		Short: op.Description,
		Args:  cobra.RangeArgs(op.Required, len(op.Params)),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(op, args)
			if err != nil {
				return err
			}

			a.logger.Debug("calling operation", zap.String("op", op.Name), zap.Int("args", len(values)))

			diags := a.registry.Lint(op.Name, values, "args")
			for _, d := range diags.Warnings {
				a.logger.Warn(d.Message, zap.String("op", op.Name), zap.String("path", d.Path), zap.String("code", d.Code))
			}

			got, err := a.registry.Call(op.Name, values)
			if err != nil {
				return err
			}

			return writeYAML(cmd, got)
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	var failedOnly bool

	cmd := &cobra.Command{
		Use:   "run SUITE...",
		Short: "Evaluate YAML suite files and print a report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &suite.Runner{
				Registry: a.registry,
				Workers:  a.cfg.Workers,
				Logger:   a.logger,
			}

			failed := false
			for _, path := range args {
				s, err := suite.LoadFile(path)
				if err != nil {
					return err
				}

				diags := suite.Validate(s, a.registry)
				for _, d := range diags.Errors {
					a.logger.Error(d.Message, zap.String("suite", path), zap.String("path", d.Path), zap.String("code", d.Code))
				}
				for _, d := range diags.Warnings {
					a.logger.Warn(d.Message, zap.String("suite", path), zap.String("path", d.Path), zap.String("code", d.Code))
				}
				for _, d := range diags.Infos {
					a.logger.Debug(d.Message, zap.String("suite", path), zap.String("path", d.Path), zap.String("code", d.Code))
				}

				report, err := runner.Run(cmd.Context(), s)
				if err != nil {
					return fmt.Errorf("suite %s: %w", path, err)
				}

				if failedOnly {
					report.Results = failures(report.Results)
				}

				if err := writeYAML(cmd, report); err != nil {
					return err
				}

				failed = failed || !report.OK()
			}

			if failed {
				return errSuiteFailed
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&failedOnly, "failed", false, "Print only failing cases")

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List operations and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, op := range a.registry.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", op.Name, usageParams(op), op.Description)
			}

			return tw.Flush()
		},
	}
}

func parseArgs(op *ops.Op, args []string) ([]node.Value, error) {
	values := make([]node.Value, len(args))
	for i, raw := range args {
		if op.Params[i] == primitive.KindString {
			values[i] = node.String(raw)
			continue
		}

		v, err := node.ParseYAML([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", op.Name, i+1, err)
		}
		values[i] = v
	}

	return values, nil
}

// usageParams renders the parameters of op, e.g. "ARRAY [NUMBER]".
func usageParams(op *ops.Op) string {
	parts := make([]string, len(op.Params))
	for i, k := range op.Params {
		name := "VALUE"
		switch k {
		case primitive.KindString:
			name = "STRING"
		case primitive.KindNumber:
			name = "NUMBER"
		case primitive.KindArray:
			name = "ARRAY"
		}

		if i >= op.Required {
			name = "[" + name + "]"
		}
		parts[i] = name
	}

	return strings.Join(parts, " ")
}

func failures(results []suite.Result) []suite.Result {
	var out []suite.Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}

	return out
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return enc.Close()
}
