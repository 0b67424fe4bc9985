package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/config"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/ui"
)

var configureAPIURL string

// configureCmd persists client settings
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "configure the client",
	Long: `Configure the client and persist the settings to ~/.aura/config.yaml.

Without flags, prints the current configuration. Environment variables
with the AURA_ prefix (AURA_API_URL, AURA_LOG_LEVEL, ...) override the
file at run time.`,
	Example: `  # Show current settings
  $ aura configure

  # Point at a different backend
  $ aura configure --api-url http://shop.example.com:8080/api`,
	RunE: runConfigure,
}

func init() {
	configureCmd.Flags().StringVar(&configureAPIURL, "api-url", "", "API base URL")
	configureCmd.SilenceUsage = true
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	if configureAPIURL == "" {
		path, _ := config.Path()
		ui.PrintInfo("api_url: %s", cfg.APIURL)
		ui.PrintInfo("config:  %s", path)
		return nil
	}

	cfg.APIURL = configureAPIURL
	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	path, _ := config.Path()
	ui.PrintSuccess("configuration saved to %s", path)
	return nil
}
