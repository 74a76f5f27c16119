package util

import "log"

// Logging turns Logf on.  Most of the library is quiet by default;
// flip this (or use a command's -v flag) when chasing a bad
// mechanism definition.
var Logging = false

// Logf calls log.Printf when Logging is set.
func Logf(format string, args ...interface{}) {
	if !Logging {
		return
	}
	log.Printf(format, args...)
}
