package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pavanmanishd/nostl"
	"github.com/pavanmanishd/nostl/internal/config"
	"github.com/pavanmanishd/nostl/internal/unittest"
	"github.com/pavanmanishd/nostl/rawmem"
)

const (
	exitOK      = 0
	exitFailure = -1 // reported by the OS as 255
)

var errTooFewArgs = errors.New("expected <container> <test>")

type flags struct {
	list     bool
	brief    bool
	metrics  bool
	config   string
	logLevel string
}

// run executes the dispatcher and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	registry := unittest.Default()
	status := exitOK
	var f flags

	cmd := &cobra.Command{
		Use:   "nostl-tests <container> <test>",
		Short: "Run a nostl container test",
		Long: "Runs the test registered as <test> for <container> and exits with its status.\n" +
			"Use --list to see every available container and test.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.list || f.brief {
				registry.WriteList(stdout, f.brief)
				return nil
			}
			if len(args) < 2 {
				cmd.SetOut(stderr)
				_ = cmd.Usage()
				return errTooFewArgs
			}

			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg, stderr)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			nostl.SetLogger(logger)
			defer nostl.SetLogger(nil)

			test, err := registry.Lookup(args[0], args[1])
			if err != nil {
				return err
			}

			logger.Info("running test", zap.String("container", test.Container), zap.String("test", test.Name))
			status = test.Run(unittest.Env{
				Out:  stdout,
				Log:  logger,
				Opts: cfg.VectorOptions(),
			})
			logger.Info("test finished", zap.String("test", test.Name), zap.Int("status", status))

			if f.metrics {
				return writeMetrics(stdout)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(normalizeHelp(args))

	fs := cmd.Flags()
	fs.BoolVar(&f.list, "list", false, "list available containers and their tests with descriptions")
	fs.BoolVar(&f.brief, "brief", false, "list available container and test pairs only")
	fs.BoolVar(&f.metrics, "metrics", false, "print raw memory metrics in Prometheus text format after the test")
	fs.StringVar(&f.config, "config", "", "path to a TOML configuration file")
	fs.StringVar(&f.logLevel, "log-level", "", "log level, overrides the configuration file")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return exitFailure
	}
	return status
}

// normalizeHelp maps the extra help spellings onto --help.
func normalizeHelp(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		switch a {
		case "--usage", "-?":
			a = "--help"
		}
		out[i] = a
	}
	return out
}

func loadConfig(f flags) (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
		if _, err := cfg.LogLevel(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*zap.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core).Named("nostl-tests"), nil
}

func writeMetrics(w io.Writer) error {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(rawmem.NewCollector(rawmem.Default)); err != nil {
		return errors.Wrap(err, "register metrics")
	}
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
