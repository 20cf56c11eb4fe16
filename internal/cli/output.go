package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pythag/ptuples/internal/tuple"
)

// Exit codes for the generator programs.
const (
	ExitSuccess = 0 // successful execution
	ExitFailure = 1 // usage/validation failure or runtime error
)

// ExitError carries an exit code out of a command's RunE.
//
// Reported marks errors whose message has already been printed (validation
// failures go to stdout before the command returns); Run does not print
// them again.
type ExitError struct {
	Code     int
	Message  string
	Err      error // underlying error (optional)
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// reportedExitError marks a failure already printed to the user.
func reportedExitError(code int) *ExitError {
	return &ExitError{Code: code, Message: "failure reported", Reported: true}
}

// wrapExitError wraps an error with an exit code for Run to print.
func wrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// Run executes a generator command and maps its outcome to a process exit
// code. Usage errors raised by the flag/argument layer are printed to
// standard output together with the usage text, matching the original
// programs' behavior of reporting all validation problems on stdout.
func Run(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Reported {
			fmt.Fprintln(cmd.ErrOrStderr(), exitErr.Error())
		}
		return exitErr.Code
	}

	// cobra-level error: wrong argument count or unknown flag.
	fmt.Fprintln(cmd.OutOrStdout(), err)
	fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
	return ExitFailure
}

// WriteTable prints every entry in table order, one per line, in the
// canonical form "(a_1,a_2,...,a_{n-1},b)".
func WriteTable(w io.Writer, t *tuple.Table) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < t.Len(); i++ {
		if _, err := bw.WriteString(t.At(i).String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
