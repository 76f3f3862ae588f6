package utils

import (
	"flag"
	"strings"
)

func lookupString(name string) string {
	f := flag.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.(flag.Getter).Get().(string)
}

func lookupBool(name string) bool {
	f := flag.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.(flag.Getter).Get().(bool)
}

// LogLevel returns the configured log level, "info" if unset.
// Debug mode forces "debug".
func LogLevel() string {
	if DebugMode() {
		return "debug"
	}
	level := strings.ToLower(lookupString("log-level"))
	if level == "" {
		return "info"
	}
	return level
}

func DebugMode() bool {
	return lookupBool("debug")
}

func DryRun() bool {
	return lookupBool("dry-run")
}

func EnvFile() string {
	return lookupString("env-file")
}
