package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gridfacts/internal/codec"
	"gridfacts/internal/collector"
	"gridfacts/internal/config"
	"gridfacts/internal/runner"
)

func main() {
	// Command line flags; flags win over the config file
	configPath := flag.String("config", "", "config file path (default: search standard locations)")
	format := flag.String("format", "", "output format: json, yaml or ansible")
	oracleHome := flag.String("oracle-home", "", "Grid Infrastructure home (default: discover)")
	node := flag.String("node", "", "short node name for per-node queries (default: local hostname)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, path, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridfacts: %v\n", err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Output = *format
	}
	if *oracleHome != "" {
		cfg.OracleHome = *oracleHome
	}
	if *node != "" {
		cfg.Node = *node
	}

	logger := newLogger(cfg.LogLevel, *debug)
	defer logger.Sync()
	if path != "" {
		logger.Debug("loaded config", zap.String("path", path))
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("collection failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	home, err := collector.ResolveHome(cfg.OracleHome)
	if err != nil {
		return err
	}
	tools := collector.ToolsFromHome(home)
	logger.Info("resolved Grid Infrastructure home", zap.String("home", home))

	var r runner.Runner
	if cfg.Remote != nil {
		ssh, err := runner.DialSSH(ctx, runner.SSHConfig{
			Host:       cfg.Remote.Host,
			Port:       cfg.Remote.Port,
			User:       cfg.Remote.User,
			KeyFile:    cfg.Remote.KeyFile,
			Passphrase: cfg.Remote.Passphrase,
			Password:   cfg.Remote.Password,
			Timeout:    cfg.CommandTimeout.Duration(),
		}, logger)
		if err != nil {
			return err
		}
		defer ssh.Close()
		r = ssh
	} else {
		if err := tools.Verify(); err != nil {
			return err
		}
		r = runner.NewLocal(cfg.CommandTimeout.Duration(), logger)
	}

	opts := []collector.Option{collector.WithLogger(logger)}
	if cfg.Node != "" {
		opts = append(opts, collector.WithNodeName(cfg.Node))
	}
	coll := collector.New(tools, r, opts...)

	facts, err := coll.Collect(ctx)
	if err != nil {
		if facts == nil {
			return err
		}
		// Partial result: report what failed but still emit what resolved.
		logger.Warn("partial collection", zap.Error(err))
	}

	exporter, err := codec.ForFormat(cfg.Output)
	if err != nil {
		return err
	}
	return exporter.Export(facts, os.Stdout)
}

func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

func newLogger(level string, debug bool) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	if debug || level == "debug" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else if parsed, err := zapcore.ParseLevel(level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(parsed)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
