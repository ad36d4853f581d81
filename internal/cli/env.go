package cli

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"recruitcrm/internal/config"
	"recruitcrm/internal/logging"
	"recruitcrm/internal/store"
)

// cmdEnv bundles the resources one command invocation operates on. Each
// command opens the store, runs its operation, and closes it again; no
// handle outlives the command.
type cmdEnv struct {
	cfg config.Config
	log *zap.Logger
	st  *store.Store
}

// openEnv loads configuration, builds the logger and opens the store.
// The returned cleanup releases both; it is safe to defer immediately.
func openEnv(opts *RootOptions) (*cmdEnv, func(), error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "load configuration", err)
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "set up logging", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, WrapExitError(ExitCommandError, "open database", err)
	}

	env := &cmdEnv{cfg: cfg, log: logger, st: st}
	cleanup := func() {
		if err := env.st.Close(); err != nil {
			env.log.Error("close database", zap.Error(err))
		}
		_ = env.log.Sync()
	}
	return env, cleanup, nil
}

// parseID parses a numeric id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: expected a positive number", arg)
	}
	return id, nil
}
