// Command kvcache is a single-shot persistent key-value cache with per-entry
// TTL. Each invocation loads the snapshot file, applies one insert, get, or
// invalidate operation, and writes the snapshot back.
package main

import (
	"os"

	"github.com/rshade/kvcache/internal/cli"
	"github.com/rshade/kvcache/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command against args and maps the outcome to a
// process exit code. All failures, including load and save errors, propagate
// here as errors; nothing panics on the way up.
func run(args []string) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	return exitCode(root.Execute())
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
