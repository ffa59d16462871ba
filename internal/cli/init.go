package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"limelight/internal/cmdlog"
	"limelight/internal/config"
	"limelight/internal/theme"
)

// Execute implements the go-flags Commander interface for InitCommand.
func (c *InitCommand) Execute(args []string) error {
	return cmdlog.Run("init", func() error {
		if !c.Force {
			if _, err := os.Stat(c.Path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", c.Path)
			}
		}
		if err := config.Save(c.Path, config.Default()); err != nil {
			return err
		}

		theme.PrintBanner()
		abs, err := filepath.Abs(c.Path)
		if err != nil {
			abs = c.Path
		}
		fmt.Println("Config written to:", abs)
		fmt.Println("Edit the campaigns, then set X_CONSUMER_KEY and X_CONSUMER_SECRET (or X_BEARER_TOKEN) in the environment or .env.")
		return nil
	})
}
