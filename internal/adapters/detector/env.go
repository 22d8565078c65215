// Package detector provides environment detection for output format selection.
package detector

import (
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering format of command output.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate format.
	ModeAuto OutputMode = iota
	// ModeText forces the human-readable renderer.
	ModeText
	// ModeJSON forces the machine-readable renderer.
	ModeJSON
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = zerr.New("unknown output format")

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeJSON:
		return "json"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode for stdout.
// Terminals and CI logs are read by people; other pipes get JSON.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())))
}

func detect(isTTY bool) OutputMode {
	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if isTTY || isCI {
		return ModeText
	}
	return ModeJSON
}

// ParseMode converts a --format flag value into an OutputMode.
func ParseMode(flag string) (OutputMode, error) {
	switch flag {
	case "auto", "":
		return ModeAuto, nil
	case "text":
		return ModeText, nil
	case "json":
		return ModeJSON, nil
	default:
		return ModeAuto, zerr.With(ErrUnknownFormat, "format", flag)
	}
}

// ResolveMode applies the user's choice to the auto-detected mode.
func ResolveMode(autoDetected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return autoDetected
	}
	return requested
}
