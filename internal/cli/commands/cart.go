package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/cart"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/ui"
)

// cartCmd manages the local shopping cart
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "manage the local shopping cart",
	Long: `Manage the local shopping cart stored in ~/.aura/cart.json.

The cart stores one line per unit: adding the same product twice puts two
lines in the cart. Totals are always derived from the current contents.`,
	Example: `  # Show the cart
  $ aura cart

  # Add one unit of a product
  $ aura cart add aura-sound-01

  # Remove the second line
  $ aura cart remove 2

  # Empty the cart
  $ aura cart clear`,
	RunE: runCartList,
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "show the cart contents",
	RunE:  runCartList,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "add one unit of a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <line>",
	Short: "remove a cart line by position",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "empty the cart",
	RunE:  runCartClear,
}

func init() {
	cartCmd.AddCommand(cartListCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)

	cartCmd.SilenceUsage = true
	cartListCmd.SilenceUsage = true
	cartAddCmd.SilenceUsage = true
	cartRemoveCmd.SilenceUsage = true
	cartClearCmd.SilenceUsage = true
}

// loadCart opens the cart store at its default path
func loadCart() (*cart.Store, error) {
	path, err := cart.DefaultPath()
	if err != nil {
		ui.PrintError("failed to locate cart: %v", err)
		return nil, fmt.Errorf("cart load failed")
	}
	store, err := cart.Load(path)
	if err != nil {
		ui.PrintError("failed to load cart: %v", err)
		return nil, fmt.Errorf("cart load failed")
	}
	return store, nil
}

func runCartList(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	store, err := loadCart()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.RenderCartTree(store.Items()))
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newGatewayClient()
	if err != nil {
		return err
	}

	resp := apiClient.GetProduct(ctx, args[0])
	if !resp.Success || resp.Data == nil {
		ui.PrintErrorBox("Product Not Found", failureMessage(resp.Message))
		return fmt.Errorf("add operation failed")
	}

	store, err := loadCart()
	if err != nil {
		return err
	}

	store.Add(*resp.Data)
	if err := store.Save(); err != nil {
		ui.PrintError("failed to save cart: %v", err)
		return fmt.Errorf("cart save failed")
	}

	ui.PrintSuccess("added %s ($%.2f) - %d line(s) in cart", resp.Data.Name, resp.Data.Price, store.Len())
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	line, err := strconv.Atoi(args[0])
	if err != nil {
		ui.PrintError("line must be a number, got %q", args[0])
		return fmt.Errorf("invalid arguments")
	}

	store, err := loadCart()
	if err != nil {
		return err
	}

	if err := store.Remove(line - 1); err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("remove operation failed")
	}
	if err := store.Save(); err != nil {
		ui.PrintError("failed to save cart: %v", err)
		return fmt.Errorf("cart save failed")
	}

	ui.PrintSuccess("removed line %d - %d line(s) in cart", line, store.Len())
	return nil
}

func runCartClear(cmd *cobra.Command, args []string) error {
	store, err := loadCart()
	if err != nil {
		return err
	}

	store.Clear()
	if err := store.Save(); err != nil {
		ui.PrintError("failed to save cart: %v", err)
		return fmt.Errorf("cart save failed")
	}

	ui.PrintSuccess("cart cleared")
	return nil
}
