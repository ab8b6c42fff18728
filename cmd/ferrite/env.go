package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ferrite/internal/config"
	"ferrite/internal/diagfmt"
	"ferrite/internal/driver"
	"ferrite/internal/logging"
)

// cliEnv is the resolved configuration of one invocation: ferrite.toml
// values overridden by explicitly set flags.
type cliEnv struct {
	cfg        config.Config
	configPath string
	color      bool
	quiet      bool
	timings    bool
}

type envKey struct{}

// errDiagnostics marks a run that completed but reported errors; main exits 1
// without printing it again.
var errDiagnostics = errors.New("errors reported")

func setupEnv(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logger := logging.New(logLevel)
	logging.SetDefault(logger)

	env := &cliEnv{}
	configPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath != "" {
		env.cfg, err = config.Load(configPath)
		env.configPath = configPath
	} else {
		var wd string
		if wd, err = os.Getwd(); err != nil {
			return err
		}
		env.cfg, env.configPath, err = config.Discover(wd)
	}
	if err != nil {
		return err
	}
	if env.configPath != "" {
		logger.Debug("config loaded", logging.FieldPath, env.configPath)
	}

	if flags.Changed("max-diagnostics") {
		if env.cfg.Diagnostics.Max, err = flags.GetInt("max-diagnostics"); err != nil {
			return err
		}
	}
	colorMode := env.cfg.Diagnostics.Color
	if flags.Changed("color") {
		if colorMode, err = flags.GetString("color"); err != nil {
			return err
		}
	}
	if err := env.cfg.Validate(); err != nil {
		return err
	}
	switch colorMode {
	case "on":
		env.color = true
	case "off":
		env.color = false
	case "auto":
		env.color = isTerminal(os.Stderr)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorMode)
	}
	if env.quiet, err = flags.GetBool("quiet"); err != nil {
		return err
	}
	if env.timings, err = flags.GetBool("timings"); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)
	cmd.SetContext(context.WithValue(ctx, envKey{}, env))
	return setupProfiling(cmd)
}

func envFrom(cmd *cobra.Command) *cliEnv {
	if env, ok := cmd.Context().Value(envKey{}).(*cliEnv); ok {
		return env
	}
	return &cliEnv{cfg: config.Default()}
}

func (e *cliEnv) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     e.color,
		Context:   int8(min(max(e.cfg.Diagnostics.Context, 0), 10)), // #nosec G115 -- clamped
		ShowNotes: true,
	}
}

// driverOptions maps the resolved config onto driver options and opens the
// token cache when it is enabled.
func (e *cliEnv) driverOptions(cmd *cobra.Command) (driver.Options, error) {
	opts := driver.OptionsFromConfig(e.cfg)
	if cmd.Flags().Lookup("jobs") != nil && cmd.Flags().Changed("jobs") {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return opts, err
		}
		opts.Jobs = jobs
	}
	useCache := e.cfg.Cache.Enabled
	if cmd.Flags().Lookup("cache") != nil && cmd.Flags().Changed("cache") {
		var err error
		if useCache, err = cmd.Flags().GetBool("cache"); err != nil {
			return opts, err
		}
	}
	if useCache {
		cache, err := driver.OpenTokenCache(e.cfg.Cache.Dir)
		if err != nil {
			// без кэша всё равно работаем
			logging.FromContext(cmd.Context()).Warn("token cache disabled", "err", err)
		} else {
			opts.Cache = cache
		}
	}
	return opts, nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115
}
