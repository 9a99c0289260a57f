package output

import (
	"fmt"
	"io"
	"os"
)

// Color modes accepted by --color and the config file.
const (
	ColorAuto   = "auto"
	ColorNever  = "never"
	ColorAlways = "always"
)

// ValidateColorMode returns an error unless mode is empty or one of the
// known color modes.
func ValidateColorMode(mode string) error {
	switch mode {
	case "", ColorAuto, ColorNever, ColorAlways:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, never or always)", mode)
	}
}

// ResolveColorMode determines the effective isTTY value from a color mode and
// actual TTY detection. Unknown values behave like "auto".
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
