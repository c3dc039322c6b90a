// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/selcolors/selcolors/internal/issue"
)

// ServiceError is an error that carries rendering information for the CLI
// layer: an optional issue catalog page and a pre-styled message.
// Always create via newServiceError.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
	// StyledMessage is the optional pre-rendered styled error text.
	StyledMessage string
	// Code is the process exit code. Zero means ExitFailure.
	Code int
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id, styledMessage string) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{
		Err:           err,
		IssueID:       issueID,
		StyledMessage: styledMessage,
	}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// exitCode returns Code, defaulting to ExitFailure.
func (e *ServiceError) exitCode() int {
	if e.Code != 0 {
		return e.Code
	}
	return ExitFailure
}

// renderServiceError renders a ServiceError in the CLI layer.
// It prints any styled message first, then the optional issue help section.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, glamourStyle string) {
	if svcErr == nil {
		return
	}

	if svcErr.StyledMessage != "" {
		fmt.Fprint(stderr, svcErr.StyledMessage)
	}

	if svcErr.IssueID == 0 {
		return
	}

	if catalogEntry := issue.Get(svcErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render(glamourStyle)
		if renderErr != nil {
			slog.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", renderErr)
		} else {
			fmt.Fprint(stderr, rendered)
		}
	}
}

// report renders err for the user and converts it to an ExitError that the
// root command exits with silently. Errors that are not ServiceErrors are
// returned unchanged for fang to print.
func (a *App) report(err error) error {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return err
	}

	if svcErr.StyledMessage == "" {
		svcErr.StyledMessage = ErrorStyle.Render("Error: ") + formatErrorForDisplay(svcErr.Err, a.flags.verbose) + "\n"
	}
	renderServiceError(a.stderr, svcErr, a.cfg.UI.ColorScheme.GlamourStyle())
	return &ExitError{Code: svcErr.exitCode()}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
