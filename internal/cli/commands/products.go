package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/types"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/ui"
)

var (
	productsCategory string
	productsSearch   string
)

// productsCmd lists the product catalog
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "browse the product catalog",
	Long: `Browse the Aura product catalog.

Lists every product by default; narrow the output with a category filter
or a free-text search.`,
	Example: `  # Full catalog
  $ aura products

  # Only one category (Audio, Wearable, Mobile, Home)
  $ aura products -c Audio

  # Free-text search
  $ aura products -s "speaker"

  # Product details
  $ aura products show aura-sound-01`,
	RunE: runProducts,
}

// productsShowCmd shows one product
var productsShowCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "show product details",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsShow,
}

func init() {
	productsCmd.Flags().StringVarP(&productsCategory, "category", "c", "", "Filter by category")
	productsCmd.Flags().StringVarP(&productsSearch, "search", "s", "", "Search by keyword")
	productsCmd.AddCommand(productsShowCmd)

	productsCmd.SilenceUsage = true
	productsShowCmd.SilenceUsage = true
}

func runProducts(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}
	if productsCategory != "" && productsSearch != "" {
		ui.PrintError("--category and --search cannot be combined")
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newGatewayClient()
	if err != nil {
		return err
	}

	var resp types.Envelope[[]types.Product]
	switch {
	case productsCategory != "":
		resp = apiClient.GetProductsByCategory(ctx, productsCategory)
	case productsSearch != "":
		resp = apiClient.SearchProducts(ctx, productsSearch)
	default:
		resp = apiClient.GetProducts(ctx)
	}

	if !resp.Success || resp.Data == nil {
		ui.PrintErrorBox("Catalog Unavailable", failureMessage(resp.Message))
		return fmt.Errorf("list operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderProductList(*resp.Data))
	return nil
}

func runProductsShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newGatewayClient()
	if err != nil {
		return err
	}

	resp := apiClient.GetProduct(ctx, args[0])
	if !resp.Success || resp.Data == nil {
		ui.PrintErrorBox("Product Not Found", failureMessage(resp.Message))
		return fmt.Errorf("get operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderProductDetail(*resp.Data))
	return nil
}

// failureMessage substitutes a generic message when the backend gave none
func failureMessage(message string) string {
	if message == "" {
		return "Unknown error"
	}
	return message
}
