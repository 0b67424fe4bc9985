package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/ui"
)

// ordersCmd lists placed orders
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "list and inspect placed orders",
	Long: `List placed orders and inspect individual ones.

The backend keeps the order history; this command only reads it. Use
'update-address' to change the shipping address of an order that has not
shipped yet.`,
	Example: `  # All orders
  $ aura orders

  # One order with its line items
  $ aura orders show ORD-20260830-0001

  # Change the shipping address
  $ aura orders update-address ORD-20260830-0001 "12 Calm St, Kyoto 600-8001"`,
	RunE: runOrders,
}

// ordersShowCmd shows one order
var ordersShowCmd = &cobra.Command{
	Use:   "show <order-number>",
	Short: "show order details",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersShow,
}

// ordersUpdateAddressCmd updates an order's shipping address
var ordersUpdateAddressCmd = &cobra.Command{
	Use:   "update-address <order-number> <new-address>",
	Short: "update the shipping address of an order",
	Args:  cobra.ExactArgs(2),
	RunE:  runOrdersUpdateAddress,
}

func init() {
	ordersCmd.AddCommand(ordersShowCmd)
	ordersCmd.AddCommand(ordersUpdateAddressCmd)

	ordersCmd.SilenceUsage = true
	ordersShowCmd.SilenceUsage = true
	ordersUpdateAddressCmd.SilenceUsage = true
}

func runOrders(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newGatewayClient()
	if err != nil {
		return err
	}

	resp := apiClient.GetOrders(ctx)
	if !resp.Success || resp.Data == nil {
		ui.PrintErrorBox("Orders Unavailable", failureMessage(resp.Message))
		return fmt.Errorf("list operation failed")
	}

	if len(*resp.Data) == 0 {
		ui.PrintInfo("No orders yet")
		return nil
	}

	fmt.Println()
	for _, order := range *resp.Data {
		fmt.Println(ui.RenderOrderSummaryLine(order))
	}
	return nil
}

func runOrdersShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newGatewayClient()
	if err != nil {
		return err
	}

	resp := apiClient.GetOrder(ctx, args[0])
	if !resp.Success || resp.Data == nil {
		ui.PrintErrorBox("Order Not Found", failureMessage(resp.Message))
		return fmt.Errorf("get operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderOrderTree(*resp.Data))
	return nil
}

func runOrdersUpdateAddress(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newGatewayClient()
	if err != nil {
		return err
	}

	resp := apiClient.UpdateOrderAddress(ctx, args[0], args[1])
	if !resp.Success || resp.Data == nil {
		ui.PrintErrorBox("Update Failed", failureMessage(resp.Message))
		return fmt.Errorf("update operation failed")
	}

	ui.PrintSuccess("shipping address updated for order %s", resp.Data.OrderNumber)
	return nil
}
