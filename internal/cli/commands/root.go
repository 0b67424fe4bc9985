package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/client"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/config"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/ui"
	"github.com/johnnywang-byte/aura-quiet-living/pkg/logger"
)

const version = "0.1.0"

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "aura",
	Short:   "Aura Quiet Living storefront client",
	Version: version,
	Long: `A terminal client for the Aura storefront. Browse the product catalog,
manage a local shopping cart, place orders, and talk to the Concierge
assistant in an interactive chat panel.`,
	Example: `  # Browse the catalog
  $ aura products

  # Add a product to the cart and check out
  $ aura cart add aura-sound-01
  $ aura checkout

  # Start the Concierge chat
  $ aura chat

  # Point the client at a different backend
  $ aura configure --api-url http://shop.example.com:8080/api`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := logger.Setup(cfg.Log); err != nil {
			return fmt.Errorf("failed to setup logger: %w", err)
		}
		return nil
	},
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configureCmd)

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("aura version %s\n", version)
}

// newGatewayClient loads the configuration and builds a gateway client
func newGatewayClient() (*client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, fmt.Errorf("config load failed")
	}

	apiClient, err := client.New(cfg.APIURL)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, fmt.Errorf("client creation failed")
	}

	return apiClient, nil
}
