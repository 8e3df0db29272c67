package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Construct bool
	Registry  bool
	Fixup     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Construct = boolEnv("TF_DEBUG_CONSTRUCT")
	d.Registry = boolEnv("TF_DEBUG_REGISTRY")
	d.Fixup = boolEnv("TF_DEBUG_FIXUP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Construct() bool {
	return d.Construct
}
func Registry() bool {
	return d.Registry
}
func Fixup() bool {
	return d.Fixup
}
