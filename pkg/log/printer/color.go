package printer

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// InitColorState decides whether the printer emits colors.
// Priority order (highest to lowest):
//  1. Explicit user setting (via CLI flag)
//  2. NO_COLOR environment variable
//  3. TTY detection
//  4. Disabled for unknown writers
func InitColorState(explicitSetting *bool, writer io.Writer) {
	if explicitSetting != nil {
		color.NoColor = !*explicitSetting
		return
	}

	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
		return
	}

	if f, ok := writer.(*os.File); ok {
		color.NoColor = !isatty.IsTerminal(f.Fd())
		return
	}

	color.NoColor = true
}
