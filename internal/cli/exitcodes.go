package cli

import (
	"errors"

	"github.com/mastermalone/css-unity/internal/configloader"
	"github.com/mastermalone/css-unity/pkg/fsutil"
	"github.com/mastermalone/css-unity/pkg/stylesheet"
)

// Exit codes for cssunity.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage or inputs.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps an error returned by a command to a process exit
// code. Missing resources never reach this path; they degrade in place.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError
	if errors.As(err, &validationErr) {
		return ExitConfigError
	}

	switch {
	case errors.Is(err, ErrUsage),
		errors.Is(err, stylesheet.ErrMissingInput),
		errors.Is(err, stylesheet.ErrInvalidInputType):
		return ExitInvalidUsage
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
