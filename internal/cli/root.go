package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/kvcache/internal/cache"
	"github.com/rshade/kvcache/internal/logging"
	"github.com/rshade/kvcache/internal/store"
)

// logger is the package-level logger for CLI operations.
//
//nolint:gochecknoglobals // Shared by the command RunE closures, set in PersistentPreRun
var logger = zerolog.Nop()

// NewRootCmd creates the root cobra command for the kvcache CLI.
// It wires up logging and the insert, get, and invalidate subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		debug    bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "kvcache",
		Short: "Persistent key-value cache with per-entry TTL",
		Long: `kvcache is a single-shot key-value cache with time-based expiration.

Each invocation loads the cache snapshot (cache_state.json in the working
directory), applies exactly one operation, and writes the snapshot back.
Expired entries are evicted lazily, on the next get that touches them.`,
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := logging.ParseLevel(logLevel)
			if debug {
				level = zerolog.DebugLevel
			}
			logger = logging.ComponentLogger(logging.New(cmd.ErrOrStderr(), level), "cli")
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (trace, debug, info, warn, error)")
	cmd.AddCommand(NewInsertCmd(), NewGetCmd(), NewInvalidateCmd())

	return cmd
}

const rootCmdExample = `  # Cache a session token for one minute
  kvcache insert --key session --value abc123 --ttl 60

  # Read it back
  kvcache get --key session

  # Drop it before it expires
  kvcache invalidate --key session`

// runAgainstStore loads the persisted cache, applies op, and writes the full
// snapshot back. Load and save failures propagate to the caller, where cobra
// surfaces them with a non-zero exit.
func runAgainstStore(op func(c *cache.Cache[string]) error) error {
	st := store.Default()

	c, err := st.Load()
	if err != nil {
		return err
	}
	if opErr := op(c); opErr != nil {
		return opErr
	}
	return st.Save(c)
}
