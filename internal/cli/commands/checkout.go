package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/cart"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/checkout"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/loader"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/ui"
)

var checkoutFile string

// checkoutCmd places an order from the current cart
var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "place an order from the current cart",
	Long: `Place an order from the current cart contents.

Prompts for contact and shipping details, shows the order summary, and
submits the order to the backend. Shipping is always free. After a
confirmed order the cart is cleared; on failure the cart and your entered
details are kept so you can retry.

Details can also be loaded from a YAML file instead of the prompts.`,
	Example: `  # Interactive checkout
  $ aura checkout

  # Non-interactive, details from a file
  $ aura checkout -f shipping.yaml

  # shipping.yaml:
  #   kind: ShippingDetails
  #   spec:
  #     email: mia@example.com
  #     phone: "+81 90 1234 5678"
  #     firstName: Mia
  #     lastName: Ito
  #     address: 12 Calm St
  #     apartment: Unit 4
  #     city: Kyoto
  #     postalCode: 600-8001`,
	RunE: runCheckout,
}

func init() {
	checkoutCmd.Flags().StringVarP(&checkoutFile, "file", "f", "", "Load shipping details from a YAML file")
	checkoutCmd.SilenceUsage = true
}

func runCheckout(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	store, err := loadCart()
	if err != nil {
		return err
	}
	if store.Len() == 0 {
		ui.PrintError("Your cart is empty")
		fmt.Println("\nRun 'aura cart add <product-id>' first.")
		return fmt.Errorf("empty cart")
	}

	apiClient, err := newGatewayClient()
	if err != nil {
		return err
	}

	items := store.Items()
	clearCart := func() {
		store.Clear()
		if err := store.Save(); err != nil {
			ui.PrintWarning("order placed but cart file could not be cleared: %v", err)
		}
	}
	alert := func(message string) {
		ui.PrintErrorBox("Checkout Failed", message)
	}

	ctrl := checkout.New(items, apiClient, clearCart, alert)

	if checkoutFile != "" {
		shipping, err := loader.LoadFromFile(checkoutFile)
		if err != nil {
			ui.PrintError("failed to load shipping details: %v", err)
			return fmt.Errorf("file load failed")
		}
		ctrl.SetForm(shipping.ToForm())
	} else if err := promptShippingDetails(ctrl); err != nil {
		ui.PrintError("failed to read details: %v", err)
		return fmt.Errorf("input failed")
	}

	// Order summary and confirmation
	fmt.Println()
	fmt.Println(ui.RenderCartTree(items))
	fmt.Println()

	confirmed := false
	confirm := &survey.Confirm{
		Message: fmt.Sprintf("Pay now — $%.2f?", cart.Total(items)),
		Default: true,
	}
	if checkoutFile != "" {
		confirmed = true
	} else if err := survey.AskOne(confirm, &confirmed); err != nil {
		return fmt.Errorf("input failed")
	}
	if !confirmed {
		ui.PrintInfo("checkout cancelled, cart unchanged")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	ctrl.Submit(ctx)

	if ctrl.State() != checkout.Complete {
		for _, field := range []string{
			checkout.FieldEmail, checkout.FieldPhone, checkout.FieldFirstName,
			checkout.FieldLastName, checkout.FieldAddress, checkout.FieldCity,
			checkout.FieldPostalCode,
		} {
			if msg := ctrl.FieldError(field); msg != "" {
				ui.PrintError("%s: %s", field, msg)
			}
		}
		return fmt.Errorf("order submission failed")
	}

	ui.PrintSuccessBox("✓ Order Confirmed", fmt.Sprintf(
		"Thank you for your order\n\nOrder Number:  %s\nTotal:         $%.2f",
		ctrl.OrderNumber(), cart.Total(items),
	))
	return nil
}

// promptShippingDetails fills the controller's form from interactive
// prompts, mirroring the validation the controller applies on submit.
func promptShippingDetails(ctrl *checkout.Controller) error {
	required := survey.WithValidator(survey.Required)

	emailFormat := survey.WithValidator(func(ans interface{}) error {
		if s, ok := ans.(string); !ok || !checkout.ValidEmail(s) {
			return errors.New(checkout.MsgInvalidEmail)
		}
		return nil
	})
	phoneFormat := survey.WithValidator(func(ans interface{}) error {
		if s, ok := ans.(string); !ok || !checkout.ValidPhone(s) {
			return errors.New(checkout.MsgInvalidPhone)
		}
		return nil
	})

	fields := []struct {
		name   string
		prompt string
		opts   []survey.AskOpt
	}{
		{checkout.FieldEmail, "Email address:", []survey.AskOpt{required, emailFormat}},
		{checkout.FieldPhone, "Phone number:", []survey.AskOpt{required, phoneFormat}},
		{checkout.FieldFirstName, "First name:", []survey.AskOpt{required}},
		{checkout.FieldLastName, "Last name:", []survey.AskOpt{required}},
		{checkout.FieldAddress, "Address:", []survey.AskOpt{required}},
		{checkout.FieldApartment, "Apartment, suite, etc. (optional):", nil},
		{checkout.FieldCity, "City:", []survey.AskOpt{required}},
		{checkout.FieldPostalCode, "Postal code:", []survey.AskOpt{required}},
	}

	for _, field := range fields {
		var value string
		prompt := &survey.Input{Message: field.prompt}
		if err := survey.AskOne(prompt, &value, field.opts...); err != nil {
			return err
		}
		if err := ctrl.SetField(field.name, value); err != nil {
			return err
		}
	}

	return nil
}
