package bridge

import (
	"fmt"

	"github.com/teranos/hsctui/errors"
)

// ErrUnsupported marks an invocation attempted for a capability the
// attached device does not implement. These are suppressed, not surfaced:
// the caller simply gets no value.
var ErrUnsupported = errors.New("capability not supported by device")

// ErrMalformedDiscovery marks an empty or unparseable capability-query
// response. Startup treats this as fatal because no supported set could be
// derived from it.
var ErrMalformedDiscovery = errors.New("malformed capability discovery response")

// CommandError reports that the device-control tool exited non-zero. It
// carries the tool's stderr text for display; it is never fatal to the
// program.
type CommandError struct {
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("device-control tool exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("device-control tool exited with code %d: %s", e.ExitCode, e.Stderr)
}

// Message returns the text shown to the user in the error dialog.
func (e *CommandError) Message() string {
	if e.Stderr == "" {
		return fmt.Sprintf("headsetcontrol failed with exit code %d", e.ExitCode)
	}
	return e.Stderr
}
