// Package action is the boundary with the GitHub Actions runner: log groups,
// step outputs and failure reporting through workflow commands.
package action

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	domainErrors "github.com/thomas-vilte/stale-discussions/internal/errors"
)

// Runtime writes workflow commands to out and step outputs to the GITHUB_OUTPUT file.
type Runtime struct {
	out    io.Writer
	getenv func(string) string
	failed bool
}

func NewRuntime(out io.Writer, getenv func(string) string) *Runtime {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Runtime{out: out, getenv: getenv}
}

// InActions reports whether the process runs inside a GitHub Actions job.
func (r *Runtime) InActions() bool {
	return r.getenv("GITHUB_ACTIONS") == "true"
}

// RunnerDebug reports whether step debug logging is enabled for the run.
func (r *Runtime) RunnerDebug() bool {
	return r.getenv("RUNNER_DEBUG") == "1"
}

// Group runs fn inside a collapsible log group. The group is closed even if fn fails.
func (r *Runtime) Group(title string, fn func() error) error {
	_, _ = fmt.Fprintf(r.out, "::group::%s\n", escapeData(title))
	defer func() { _, _ = fmt.Fprintln(r.out, "::endgroup::") }()
	return fn()
}

// SetOutput sets a step output. Non-string values are JSON encoded.
// Outside Actions the output is printed as name=value.
func (r *Runtime) SetOutput(name string, value any) error {
	s, err := stringify(value)
	if err != nil {
		return domainErrors.ErrWriteOutput.WithError(err).WithContext("output", name)
	}

	path := r.getenv("GITHUB_OUTPUT")
	if path == "" {
		_, err := fmt.Fprintf(r.out, "%s=%s\n", name, s)
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return domainErrors.ErrWriteOutput.WithError(err).WithContext("output", name)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.WriteString(f, formatOutput(name, s, "ghadelimiter_"+uuid.NewString())); err != nil {
		return domainErrors.ErrWriteOutput.WithError(err).WithContext("output", name)
	}
	return nil
}

// SetFailed reports err as an error annotation and marks the run as failed.
func (r *Runtime) SetFailed(err error) {
	r.failed = true
	_, _ = fmt.Fprintf(r.out, "::error::%s\n", escapeData(err.Error()))
}

// Failed reports whether SetFailed was called.
func (r *Runtime) Failed() bool {
	return r.failed
}

// ExitCode is the process exit code matching the run outcome.
func (r *Runtime) ExitCode() int {
	if r.failed {
		return 1
	}
	return 0
}

func formatOutput(name, value, delimiter string) string {
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
}

func stringify(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// escapeData escapes a workflow command payload the way the runner expects.
func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}
