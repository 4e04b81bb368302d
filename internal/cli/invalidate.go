package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/kvcache/internal/cache"
)

// NewInvalidateCmd creates the invalidate command, which removes a key
// unconditionally. Removing an absent key still succeeds.
func NewInvalidateCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "invalidate",
		Short: "Remove a key from the cache, expired or not",
		Example: `  # Drop a cached value before it expires
  kvcache invalidate --key session`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAgainstStore(func(c *cache.Cache[string]) error {
				c.Invalidate(key)
				logger.Debug().Str("key", key).Msg("invalidated cache entry")
				cmd.Printf("Invalidated key '%s'\n", key)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "cache key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
