package runner

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/ssh"
)

// SSHConfig holds connection settings for running the administrative tools on
// a remote cluster node. Key-based auth is tried when KeyFile is set,
// password auth otherwise.
type SSHConfig struct {
	Host       string
	Port       int
	User       string
	KeyFile    string
	Passphrase string
	Password   string
	// Timeout bounds the connection and each remote command.
	Timeout time.Duration
}

// SSH runs commands on a remote host over one shared SSH connection.
type SSH struct {
	client  *ssh.Client
	logger  *zap.Logger
	timeout time.Duration
}

// DialSSH establishes the SSH connection used by the returned runner.
func DialSSH(ctx context.Context, cfg SSHConfig, logger *zap.Logger) (*SSH, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientCfg, err := buildClientConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build ssh config: %w", err)
	}

	port := cfg.Port
	if port == 0 {
		port = 22
	}
	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", port))

	dialer := &net.Dialer{Timeout: cfg.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientCfg)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ssh handshake with %s: %w", addr, err)
	}

	return &SSH{
		client:  ssh.NewClient(sshConn, chans, reqs),
		logger:  logger,
		timeout: cfg.Timeout,
	}, nil
}

// Close tears down the SSH connection.
func (s *SSH) Close() error {
	return s.client.Close()
}

// Run executes the argument vector in a fresh session on the remote host.
func (s *SSH) Run(ctx context.Context, argv ...string) Result {
	if len(argv) == 0 {
		return Result{Failed: true}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	session, err := s.client.NewSession()
	if err != nil {
		s.logger.Debug("ssh session failed", zap.Error(err))
		return Result{Failed: true}
	}
	defer session.Close()

	var stdout bytes.Buffer
	session.Stdout = &stdout

	done := make(chan error, 1)
	go func() {
		done <- session.Run(quoteArgv(argv))
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		session.Close()
		err = ctx.Err()
	}

	res := Result{Lines: splitLines(stdout.String()), Failed: err != nil}
	if err != nil {
		s.logger.Debug("remote command failed",
			zap.Strings("argv", argv),
			zap.Error(err))
	}
	return res
}

func buildClientConfig(cfg SSHConfig) (*ssh.ClientConfig, error) {
	if cfg.User == "" {
		return nil, fmt.Errorf("ssh user is required")
	}

	var auth []ssh.AuthMethod
	switch {
	case cfg.KeyFile != "":
		key, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("read key %s: %w", cfg.KeyFile, err)
		}
		var signer ssh.Signer
		if cfg.Passphrase != "" {
			signer, err = ssh.ParsePrivateKeyWithPassphrase(key, []byte(cfg.Passphrase))
		} else {
			signer, err = ssh.ParsePrivateKey(key)
		}
		if err != nil {
			return nil, fmt.Errorf("parse key %s: %w", cfg.KeyFile, err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	case cfg.Password != "":
		auth = append(auth, ssh.Password(cfg.Password))
	default:
		return nil, fmt.Errorf("ssh key file or password is required")
	}

	return &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         cfg.Timeout,
	}, nil
}

// quoteArgv renders an argument vector as a remote shell command line.
func quoteArgv(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		if arg == "" || strings.ContainsAny(arg, " \t\"'\\$`") {
			quoted[i] = "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
		} else {
			quoted[i] = arg
		}
	}
	return strings.Join(quoted, " ")
}
