package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Dispatch bool
	Register bool
	Load     bool
	Save     bool
	Diff     bool
	Patch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Dispatch = boolEnv("POLYDOC_DEBUG_DISPATCH")
	d.Register = boolEnv("POLYDOC_DEBUG_REGISTER")
	d.Load = boolEnv("POLYDOC_DEBUG_LOAD")
	d.Save = boolEnv("POLYDOC_DEBUG_SAVE")
	d.Diff = boolEnv("POLYDOC_DEBUG_DIFF")
	d.Patch = boolEnv("POLYDOC_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Dispatch() bool {
	return d.Dispatch
}
func Register() bool {
	return d.Register
}
func Load() bool {
	return d.Load
}
func Save() bool {
	return d.Save
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}

func LogAny(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(data)
}
