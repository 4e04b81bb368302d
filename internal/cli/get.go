package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/kvcache/internal/cache"
)

// NewGetCmd creates the get command, which looks up a key and reports its
// value or a not-found message. A miss is a normal outcome, not an error;
// both paths exit zero.
func NewGetCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up the value stored under a key",
		Example: `  # Read a cached value
  kvcache get --key session`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAgainstStore(func(c *cache.Cache[string]) error {
				// Get may evict an expired entry; the save after this
				// closure persists that removal.
				value, ok := c.Get(key)
				if ok {
					cmd.Printf("Value for key '%s': %s\n", key, value)
				} else {
					cmd.Printf("No value found for key '%s'\n", key)
				}
				logger.Debug().Str("key", key).Bool("hit", ok).Msg("cache lookup")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "cache key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
