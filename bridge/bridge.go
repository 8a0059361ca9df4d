// Package bridge wraps the external headsetcontrol command.
//
// Every call is a one-shot, stateless subprocess execution: there is no
// persistent connection, no retry policy and no partial-failure mode beyond
// "process failed to run" or "exited non-zero". The caller decides how a
// failure surfaces; the bridge only classifies it.
package bridge

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/teranos/hsctui/capability"
	"github.com/teranos/hsctui/errors"
	"github.com/teranos/hsctui/logger"
)

// QuerySentinel is the capability key that asks the device which
// capabilities it supports. It is always allowed through the guard.
const QuerySentinel = '?'

// DefaultTool is the executable looked up on PATH when no override is given.
const DefaultTool = "headsetcontrol"

// DefaultTimeout bounds a single invocation. The tool is expected to return
// in well under a second; anything longer means a wedged device read.
const DefaultTimeout = 5 * time.Second

// Runner executes a command and returns captured stdout, stderr and the
// process exit code. The error is non-nil only when the process could not
// be run at all (missing binary, context cancelled); a non-zero exit is
// reported through exitCode with a nil error.
type Runner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, exitCode int, err error)

// Bridge invokes the device-control tool for single capability operations.
type Bridge struct {
	tool      string
	timeout   time.Duration
	run       Runner
	log       *zap.SugaredLogger
	supported *capability.Registry
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithTimeout overrides the per-invocation timeout.
func WithTimeout(d time.Duration) Option {
	return func(b *Bridge) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// WithRunner replaces the subprocess runner. Tests use this to avoid
// needing the real binary.
func WithRunner(r Runner) Option {
	return func(b *Bridge) { b.run = r }
}

// WithLogger attaches a logger for command tracing.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(b *Bridge) { b.log = log }
}

// New creates a Bridge for the given tool executable. An empty tool name
// selects DefaultTool.
func New(tool string, opts ...Option) *Bridge {
	if tool == "" {
		tool = DefaultTool
	}
	b := &Bridge{
		tool:    tool,
		timeout: DefaultTimeout,
		run:     execRunner,
		log:     logger.Logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Restrict binds the discovered supported set. Once bound, Invoke rejects
// any key outside the set (the query sentinel excepted) without launching
// the tool.
func (b *Bridge) Restrict(supported *capability.Registry) {
	b.supported = supported
}

// Invoke runs `<tool> -c -<key> [arg]` and returns the captured stdout on
// success. A non-zero exit yields a *CommandError carrying the tool's
// stderr text. Keys outside the supported set are suppressed with
// ErrUnsupported before any process is launched.
func (b *Bridge) Invoke(ctx context.Context, key rune, args ...string) (string, error) {
	if key != QuerySentinel && b.supported != nil {
		if _, ok := b.supported.Lookup(key); !ok {
			b.log.Debugw("suppressed invocation for unsupported capability", "key", string(key))
			return "", errors.Wrapf(ErrUnsupported, "capability %q", string(key))
		}
	}

	// -c requests parse-friendly output.
	argv := append([]string{"-c", "-" + string(key)}, args...)
	return b.exec(ctx, argv)
}

// Discover queries the device for its supported capability letters: the
// first line of `<tool> -c -?` output. An empty or blank first line is
// reported as ErrMalformedDiscovery; the caller treats that as fatal since
// no capabilities could otherwise be known.
func (b *Bridge) Discover(ctx context.Context) (string, error) {
	out, err := b.Invoke(ctx, QuerySentinel)
	if err != nil {
		return "", errors.Wrap(err, "capability discovery failed")
	}

	letters, _, _ := strings.Cut(out, "\n")
	letters = strings.TrimSpace(letters)
	if letters == "" {
		return "", errors.Wrapf(ErrMalformedDiscovery, "output %q", out)
	}
	return letters, nil
}

// DeviceName scrapes the headset's product name from the tool's verbose
// `-?` output, which prints a line like "Found <name>!". The scrape is a
// nicety for the window title; callers fall back to a generic title when it
// fails.
func (b *Bridge) DeviceName(ctx context.Context) (string, error) {
	out, err := b.exec(ctx, []string{"-?"})
	if err != nil {
		return "", err
	}

	_, rest, found := strings.Cut(out, "Found ")
	if !found {
		return "", errors.Newf("no device name in output %q", out)
	}
	name, _, found := strings.Cut(rest, "!")
	if !found || strings.TrimSpace(name) == "" {
		return "", errors.Newf("no device name in output %q", out)
	}
	return strings.TrimSpace(name), nil
}

func (b *Bridge) exec(ctx context.Context, argv []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	b.log.Debugw("invoking device-control tool",
		"command", shellquote.Join(append([]string{b.tool}, argv...)...))

	stdout, stderr, code, err := b.run(ctx, b.tool, argv...)
	if err != nil {
		return "", errors.Wrapf(err, "failed to run %s", b.tool)
	}
	if code != 0 {
		return "", &CommandError{
			ExitCode: code,
			Stderr:   strings.TrimSpace(string(stderr)),
		}
	}
	return string(stdout), nil
}

// execRunner is the production Runner backed by os/exec.
func execRunner(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
	}
	return stdout.Bytes(), stderr.Bytes(), 0, err
}
