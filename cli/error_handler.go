package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/fbrowse/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}

	browseErr, _ := errors.As(err)
	path := ""
	if browseErr != nil {
		path = browseErr.Path()
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeAccess:
		fmt.Fprintf(out, "❌ Cannot open directory %s%s\n", path, causeSuffix(browseErr))

	case errors.ErrCodeRead:
		fmt.Fprintf(out, "❌ Cannot read file %s%s\n", path, causeSuffix(browseErr))
		if browseErr != nil {
			if limit, ok := browseErr.Details["limit"]; ok {
				fmt.Fprintf(out, "Raise max_file_size (currently %v bytes) to open larger files.\n", limit)
			}
		}

	case errors.ErrCodeNotFound:
		fmt.Fprintf(out, "❌ No such file or directory: %s\n", path)

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(out, "❌ Configuration file not found: %s\n", path)

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(out, "❌ %s%s\n", browseErr.Message, causeSuffix(browseErr))
		if path != "" {
			fmt.Fprintf(out, "Check %s or run 'fbrowse config validate'.\n", path)
		}

	case errors.ErrCodeNotATerminal:
		fmt.Fprintf(out, "❌ %s\n", browseErr.Message)
		fmt.Fprintf(out, "Use 'fbrowse ls', 'fbrowse tree' or 'fbrowse cat' for non-interactive output.\n")

	default:
		fmt.Fprintf(out, "❌ Error: %v\n", err)
	}

	if h.Verbose && browseErr != nil {
		fmt.Fprintf(out, "\nError details:\n%s\n", browseErr.ToJSON())
	}
	return err
}

func causeSuffix(e *errors.BrowseError) string {
	if e == nil || e.Cause == nil {
		return ""
	}
	return ": " + e.Cause.Error()
}
