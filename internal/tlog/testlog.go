package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold = "\033[1m"
	red  = "\033[1;31m"
)

// Log logs error.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(renderString(err, bold))
}

// Error signal error.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(renderString(err, red))
}

// Fatal signal error and stop the test.
func Fatal(t TestingPrinter, err error) {
	t.Helper()
	t.Fatal(renderString(err, red))
}

// Check do nothing and return false if error is nil.
// Prints error and return true otherwise.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(renderString(err, red))
	return true
}

// Panic runs f and returns the error it panicked with. Non-error panic
// values are turned into errors, nil is returned if f did not panic.
func Panic(f func()) (err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}

		if e, ok := p.(error); ok {
			err = e
			return
		}

		err = errors.Newf("panic: %v", p)
	}()

	f()
	return nil
}

func renderString(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString("\033[0m\n")

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c errorContextConsumer
	d.Deliver(&c)

	var maxname int
	for _, v := range c.vars {
		if len(v.name) > maxname {
			maxname = len(v.name)
		}
	}

	for _, v := range c.vars {
		b.WriteString("    \033[1m")
		b.WriteString(v.name)
		b.WriteString("\033[0m: ")
		b.WriteString(strings.Repeat(" ", maxname-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}
	return b.String()
}
