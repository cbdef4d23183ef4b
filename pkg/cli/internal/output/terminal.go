package output

import (
	"os"
	"runtime"
	"sync"

	"golang.org/x/term"
)

var (
	colorMu       sync.Mutex
	colorResolved bool
	colorOK       bool

	unicodeOnce sync.Once
	unicodeOK   bool
)

// ColorEnabled reports whether styled output should be emitted. Styling is
// off when stdout is not a terminal, NO_COLOR is set, TERM is dumb, or a
// caller disabled it explicitly.
func ColorEnabled() bool {
	colorMu.Lock()
	defer colorMu.Unlock()
	if !colorResolved {
		colorResolved = true
		colorOK = detectColor()
	}
	return colorOK
}

// SetColorEnabled overrides detection, for the --no-color flag.
func SetColorEnabled(enabled bool) {
	colorMu.Lock()
	defer colorMu.Unlock()
	colorResolved = true
	colorOK = enabled
}

func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// UnicodeTerminal reports whether the terminal can render Unicode glyphs.
// False when output is piped, TERM is dumb, or on Windows outside Windows
// Terminal, where the default console fonts lack the glyphs.
func UnicodeTerminal() bool {
	unicodeOnce.Do(func() {
		if os.Getenv("TERM") == "dumb" {
			return
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return
		}
		if runtime.GOOS == "windows" {
			// Windows Terminal sets WT_SESSION; legacy conhost does not.
			unicodeOK = os.Getenv("WT_SESSION") != ""
			return
		}
		unicodeOK = true
	})
	return unicodeOK
}

// Icon returns unicode when the terminal supports it, ascii otherwise.
func Icon(unicode, ascii string) string {
	if UnicodeTerminal() {
		return unicode
	}
	return ascii
}
