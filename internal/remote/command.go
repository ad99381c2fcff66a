// Package remote builds the shell command lines executed on remote hosts
package remote

import (
	"strings"

	"github.com/alessio/shellescape"
)

// Command joins name and its arguments, quoting the arguments for a POSIX shell
func Command(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)

	for _, arg := range args {
		parts = append(parts, shellescape.Quote(arg))
	}

	return strings.Join(parts, " ")
}

// Privileged prefixes a command with the privilege prefix (sudo) when one is set
func Privileged(prefix string, command string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return command
	}

	return prefix + " " + command
}

// Chain joins command lines so that each runs only when the previous one succeeded
func Chain(commands ...string) string {
	return strings.Join(commands, " && ")
}
