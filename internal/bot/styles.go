package bot

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Styles collects the terminal decorations used by the interpreter.
type Styles struct {
	Prompt lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the colored set: yellow prompt, red errors.
func DefaultStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(config.ColorPrompt)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(config.ColorError)),
	}
}

// PlainStyles returns undecorated styles for piped output and tests.
func PlainStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
	}
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
