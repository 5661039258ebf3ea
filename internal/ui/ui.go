package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/stale-discussions/internal/errors"
	"github.com/thomas-vilte/stale-discussions/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)
	Value   = color.New(color.FgCyan)
)

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, Warning.Sprint(msg))
}

// PrintKeyValue prints "key: value" with the value highlighted.
func PrintKeyValue(w io.Writer, key string, value any) {
	_, _ = fmt.Fprintf(w, "%s: %s\n", key, Value.Sprint(value))
}

// HandleAppError prints an error with its details and suggestion when it is an AppError.
// A nil translations falls back to English labels.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	label := func(id, fallback string) string {
		if t == nil {
			return fallback
		}
		return t.GetMessage(id, 0, nil)
	}

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, fmt.Sprintf("%s: %v", label("error_label", "Error"), err))
		return
	}

	_, _ = Error.Fprintf(w, "%s: %s\n", appErr.Type, appErr.Message)

	if appErr.Err != nil {
		_, _ = Dim.Fprintf(w, "   %s: %v\n", label("error_details", "Details"), appErr.Err)
	}

	if appErr.Suggestion != "" {
		prefix := label("error_suggestion", "Suggestion") + ": "
		lines := strings.Split(appErr.Suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				_, _ = Info.Fprint(w, prefix)
				_, _ = fmt.Fprintln(w, line)
			} else {
				_, _ = fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", len(prefix)), line)
			}
		}
	}
}
