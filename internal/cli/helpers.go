package cli

import (
	"context"
	"io"
	"os"
	"runtime/trace"

	"github.com/fatih/color"
	"golang.org/x/term"
)

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func inRegion[T any](ctx context.Context, name string, fn func() (T, error)) (T, error) {
	var value T
	var err error
	trace.WithRegion(ctx, name, func() {
		value, err = fn()
	})
	return value, err
}

type palette struct {
	good  func(a ...interface{}) string
	bad   func(a ...interface{}) string
	value func(a ...interface{}) string
	dim   func(a ...interface{}) string
}

// newPalette colors output according to mode: always, never, or auto, which
// colors only terminals and respects NO_COLOR.
func newPalette(w io.Writer, mode string) palette {
	enabled := false
	switch mode {
	case "always":
		enabled = true
	case "never":
	default:
		enabled = os.Getenv("NO_COLOR") == "" && writerIsTerminal(w)
	}

	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		good:  mk(color.FgGreen, color.Bold),
		bad:   mk(color.FgHiRed, color.Bold),
		value: mk(color.FgHiBlue),
		dim:   mk(color.FgHiBlack),
	}
}
