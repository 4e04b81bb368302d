package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/kvcache/internal/cache"
)

// defaultTTLSeconds is the TTL applied when --ttl is not given.
const defaultTTLSeconds = 30

// NewInsertCmd creates the insert command, which stores a value under a key
// with a TTL, overwriting any existing entry for that key.
func NewInsertCmd() *cobra.Command {
	var (
		key   string
		value string
		ttl   uint64
	)

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert or overwrite a value under a key",
		Example: `  # Cache a value with the default 30 second TTL
  kvcache insert --key api_key --value secret123

  # Cache a session token for one minute
  kvcache insert --key session --value abc123 --ttl 60`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAgainstStore(func(c *cache.Cache[string]) error {
				// Seconds-based insert: a uint64 TTL must not be squeezed
				// through time.Duration, whose int64-nanosecond range
				// overflows around 292 years.
				c.InsertSeconds(key, value, ttl)
				logger.Debug().
					Str("key", key).
					Uint64("ttl_seconds", ttl).
					Msg("inserted cache entry")
				cmd.Printf("Inserted key '%s'\n", key)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "cache key")
	cmd.Flags().StringVar(&value, "value", "", "value to store")
	cmd.Flags().Uint64Var(&ttl, "ttl", defaultTTLSeconds, "time-to-live in seconds")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
