// Package debug gates diagnostic logging on DOCDELTA_DEBUG_*
// environment variables, read once at startup.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Match    bool
	Moves    bool
	Identity bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("DOCDELTA_DEBUG_MATCH")
	d.Moves = boolEnv("DOCDELTA_DEBUG_MOVES")
	d.Identity = boolEnv("DOCDELTA_DEBUG_IDENTITY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Moves() bool {
	return d.Moves
}
func Identity() bool {
	return d.Identity
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
