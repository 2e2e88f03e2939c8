package memory

import (
	"strings"
)

// processName prefers the first command-line token over the kernel's short
// name, which is truncated to 15 bytes. Both may hold arbitrary bytes, so the
// result is forced to valid UTF-8.
func processName(comm string, cmdline []string) string {
	comm = strings.ToValidUTF8(comm, "\uFFFD")
	if len(cmdline) == 0 {
		return comm
	}
	first := cmdline[0]
	if i := strings.IndexAny(first, " \x00"); i >= 0 {
		first = first[:i]
	}
	if i := strings.LastIndexByte(first, '/'); i >= 0 {
		first = first[i+1:]
	}
	if first == "" {
		return comm
	}
	return strings.ToValidUTF8(first, "\uFFFD")
}
