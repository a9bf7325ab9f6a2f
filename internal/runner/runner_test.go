package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want []string
	}{
		"trailing newline dropped": {
			raw:  "one\ntwo\n",
			want: []string{"one", "two"},
		},
		"lines trimmed": {
			raw:  "  one  \n\ttwo\n",
			want: []string{"one", "two"},
		},
		"crlf": {
			raw:  "one\r\ntwo\r\n",
			want: []string{"one", "two"},
		},
		"interior blank kept": {
			raw:  "one\n\ntwo\n",
			want: []string{"one", "", "two"},
		},
		"empty": {
			raw:  "",
			want: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.raw))
		})
	}
}

func TestResultEmpty(t *testing.T) {
	assert.True(t, Result{}.Empty())
	assert.True(t, Result{Lines: []string{""}}.Empty())
	assert.True(t, Result{Lines: []string{"output"}, Failed: true}.Empty())
	assert.False(t, Result{Lines: []string{"", "output"}}.Empty())
}

func TestResultFirst(t *testing.T) {
	assert.Equal(t, "", Result{}.First())
	assert.Equal(t, "one", Result{Lines: []string{"one", "two"}}.First())
}

func TestResultNonEmpty(t *testing.T) {
	res := Result{Lines: []string{"orclcdb", "", "testdb"}}
	assert.Equal(t, []string{"orclcdb", "testdb"}, res.NonEmpty())
	assert.Nil(t, Result{Lines: []string{""}}.NonEmpty())
}

func TestLocalRun(t *testing.T) {
	l := NewLocal(5*time.Second, nil)

	res := l.Run(context.Background(), "sh", "-c", "echo one; echo two")
	assert.False(t, res.Failed)
	assert.Equal(t, []string{"one", "two"}, res.Lines)
}

func TestLocalRunNonZeroExit(t *testing.T) {
	l := NewLocal(5*time.Second, nil)

	res := l.Run(context.Background(), "sh", "-c", "echo partial; exit 3")
	assert.True(t, res.Failed)
	// Output captured before the failure is kept.
	assert.Equal(t, []string{"partial"}, res.Lines)
	assert.True(t, res.Empty())
}

func TestLocalRunMissingBinary(t *testing.T) {
	l := NewLocal(5*time.Second, nil)

	res := l.Run(context.Background(), "/nonexistent/bin/srvctl")
	assert.True(t, res.Failed)
	assert.True(t, res.Empty())
}

func TestLocalRunTimeout(t *testing.T) {
	l := NewLocal(50*time.Millisecond, nil)

	start := time.Now()
	res := l.Run(context.Background(), "sh", "-c", "sleep 5")
	require.True(t, res.Failed)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestLocalRunEmptyArgv(t *testing.T) {
	l := NewLocal(0, nil)
	assert.True(t, l.Run(context.Background()).Failed)
}

func TestQuoteArgv(t *testing.T) {
	tests := map[string]struct {
		argv []string
		want string
	}{
		"plain": {
			argv: []string{"/u01/grid/bin/srvctl", "config", "network"},
			want: "/u01/grid/bin/srvctl config network",
		},
		"argument with space": {
			argv: []string{"/u01/grid/bin/srvctl", "config", "listener", "-l", "my listener"},
			want: "/u01/grid/bin/srvctl config listener -l 'my listener'",
		},
		"single quote escaped": {
			argv: []string{"echo", "it's"},
			want: `echo 'it'\''s'`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, quoteArgv(tt.argv))
		})
	}
}
