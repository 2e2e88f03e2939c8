package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/procfs"
	"github.com/stretchr/testify/require"
)

// fakeProc is one process directory of a procfs fixture.
type fakeProc struct {
	pid      int
	ppid     int
	comm     string
	rssPages int
	cmdline  []string
}

// writeProcFixture lays out a minimal proc mount under a temp dir and returns
// an FS rooted there together with the root path.
func writeProcFixture(t *testing.T, meminfo string, procs ...fakeProc) (procfs.FS, string) {
	t.Helper()
	root := t.TempDir()
	if meminfo != "" {
		require.NoError(t, os.WriteFile(filepath.Join(root, "meminfo"), []byte(meminfo), 0o644))
	}
	for _, p := range procs {
		dir := filepath.Join(root, strconv.Itoa(p.pid))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "stat"), []byte(statLine(p)), 0o644))
		cmdline := ""
		if len(p.cmdline) > 0 {
			cmdline = strings.Join(p.cmdline, "\x00") + "\x00"
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, "cmdline"), []byte(cmdline), 0o644))
	}
	fs, err := procfs.NewFS(root)
	require.NoError(t, err)
	return fs, root
}

func statLine(p fakeProc) string {
	head := fmt.Sprintf("%d (%s) S %d %d %d 0 -1 4194560 120 0 0 0 15 7 0 0 20 0 1 0 4200 123456789 %d 18446744073709551615",
		p.pid, p.comm, p.ppid, p.pid, p.pid, p.rssPages)
	return head + strings.Repeat(" 0", 27) + "\n"
}

func pages(n int) uint64 {
	return uint64(n * os.Getpagesize())
}
