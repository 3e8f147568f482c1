package currency

import (
	"fmt"
	"io"
	"os"

	"github.com/tomruk/currency-go/internal/sync"
	"github.com/xiegeo/coloredgoroutine"
)

type (
	Debugger interface {
		Log(main string, v ...any)
		WithContext(context string) Debugger
	}

	noopDebugger struct{}

	printDebugger struct {
		w       io.Writer
		context string
	}
)

func NewNoopDebugger() Debugger {
	return noopDebugger{}
}

func (d noopDebugger) Log(main string, _v ...any) {}

func (d noopDebugger) WithContext(context string) Debugger { return d }

// NewPrintDebugger returns a Debugger that prints to stdout,
// coloring the output by goroutine.
func NewPrintDebugger() Debugger {
	return newPrintDebugger(coloredgoroutine.Colors(os.Stdout))
}

func newPrintDebugger(w io.Writer) *printDebugger {
	return &printDebugger{w: w}
}

var printMu sync.Mutex

// Log each field, adding colon if there's a subsequent field.
func (d *printDebugger) Log(main string, _v ...any) {
	printMu.Lock()
	defer printMu.Unlock()

	if len(d.context) != 0 {
		fmt.Fprint(d.w, d.context)
		if len(main) != 0 || len(_v) != 0 {
			fmt.Fprint(d.w, ": ")
		}
	}
	if len(main) != 0 {
		fmt.Fprint(d.w, main)
		if len(_v) != 0 {
			fmt.Fprint(d.w, ": ")
		}
	}

	for i, v := range _v {
		if i != 0 {
			fmt.Fprint(d.w, ": ")
		}
		fmt.Fprint(d.w, v)
	}

	fmt.Fprint(d.w, "\n")
}

func (d printDebugger) WithContext(context string) Debugger {
	d.context = context
	return &d
}
