package runner

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// Local runs commands on the local host via os/exec. Each invocation is
// bounded by Timeout; a timed-out command counts as failed.
type Local struct {
	logger  *zap.Logger
	timeout time.Duration
}

// NewLocal creates a local runner. A zero timeout disables the per-command
// bound.
func NewLocal(timeout time.Duration, logger *zap.Logger) *Local {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Local{logger: logger, timeout: timeout}
}

// Run executes argv[0] with the remaining arguments and captures stdout.
func (l *Local) Run(ctx context.Context, argv ...string) Result {
	if len(argv) == 0 {
		return Result{Failed: true}
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	res := Result{Lines: splitLines(stdout.String()), Failed: err != nil}
	if err != nil {
		l.logger.Debug("command failed",
			zap.Strings("argv", argv),
			zap.Error(err))
	}
	return res
}
