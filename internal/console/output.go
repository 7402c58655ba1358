package console

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output picks the writer for the board. In "auto" mode glyph colors survive
// only when f is a terminal; otherwise the escapes are stripped.
func Output(f *os.File, mode string) io.Writer {
	if useColor(f, mode) {
		return colorable.NewColorable(f)
	}
	return colorable.NewNonColorable(f)
}

func useColor(f *os.File, mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
