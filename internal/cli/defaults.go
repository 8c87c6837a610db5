package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/autonome/tabview/pkg/config"
)

// defaultsCommand creates the defaults command, which prints the stock
// engine tuning as a TOML document suitable for --config.
func (c *CLI) defaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the stock engine tuning as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := toml.NewEncoder(os.Stdout).Encode(config.Defaults()); err != nil {
				return fmt.Errorf("encode defaults: %w", err)
			}
			return nil
		},
	}
}
