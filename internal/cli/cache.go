package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/worldgen/pkg/cache"
)

// cacheDir returns the layout cache directory (~/.cache/worldgen/ or
// $XDG_CACHE_HOME/worldgen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// newCache returns the on-disk layout cache, or a NullCache when caching is
// disabled or no cache directory is available.
func (c *CLI) newCache(disabled bool) cache.Cache {
	if disabled {
		return cache.NullCache{}
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("layout cache disabled", "err", err)
		return cache.NullCache{}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("layout cache disabled", "err", err)
		return cache.NullCache{}
	}
	return fc
}

// cacheCommand creates the cache command for managing the layout cache.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the Graphviz layout cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all cached layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			if err := fc.Clear(); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Cleared %s", dir)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			printFile(cmd.OutOrStdout(), dir)
			return nil
		},
	})

	return cmd
}
