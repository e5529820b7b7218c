package cmdutil

import (
	"errors"

	oerrors "github.com/pyforge/cli/internal/errors"
	"github.com/pyforge/cli/internal/output"
)

// PrintError prints a command error in a user-friendly format. DetailErrors
// carry a preformatted multi-line block (location, message, hint) and are
// printed verbatim; other errors fall back to the standard key-value log
// format.
func PrintError(err error) {
	var detailErr *oerrors.DetailError
	if errors.As(err, &detailErr) {
		output.Details(detailErr.Error())
		return
	}

	output.Error(err.Error())
}

// ExitWithCode wraps err in an ExitError carrying the code derived from its
// class, marking it printed so main does not print it twice.
func ExitWithCode(err error) error {
	if err == nil {
		return nil
	}

	PrintError(err)

	exitErr := oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	exitErr.Printed = true
	return exitErr
}
