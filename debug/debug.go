package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
)

type debug struct {
	Order  bool
	Expand bool
	Layout bool
}

var d *debug

func init() {
	d = &debug{}
	d.Order = boolEnv("TAGDEF_DEBUG_ORDER")
	d.Expand = boolEnv("TAGDEF_DEBUG_EXPAND")
	d.Layout = boolEnv("TAGDEF_DEBUG_LAYOUT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Order reports whether the record order is traced.
func Order() bool {
	return d.Order
}

// Expand reports whether dependency class expansion is traced.
func Expand() bool {
	return d.Expand
}

// Layout reports whether computed record layouts are traced.
func Layout() bool {
	return d.Layout
}

func LogAny(v any) {
	logAny(os.Stderr, v)
}

func logAny(w io.Writer, v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(w, "%v\n", v)
		return
	}
	w.Write(append(d, '\n'))
}
