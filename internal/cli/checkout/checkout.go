// Package checkout owns the shipping/contact form state and the order
// submission flow.
package checkout

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/types"
)

// Form holds the checkout field values. Every field except Apartment is
// required at submission time.
type Form struct {
	Email      string
	Phone      string
	FirstName  string
	LastName   string
	Address    string
	Apartment  string
	City       string
	PostalCode string
}

// Field names as used by SetField and validation error maps
const (
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldAddress    = "address"
	FieldApartment  = "apartment"
	FieldCity       = "city"
	FieldPostalCode = "postalCode"
)

// Validation messages
const (
	MsgRequired     = "Please fill out this field."
	MsgInvalidEmail = "Please enter a valid email address."
	MsgInvalidPhone = "Please enter a valid phone number."
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,}$`)
)

// ValidEmail reports whether the value looks like an email address
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// ValidPhone reports whether the value looks like a phone number
func ValidPhone(s string) bool { return phonePattern.MatchString(s) }

// Validate checks the form and returns a mapping from field name to error
// message. An empty map means the form is valid. Apartment is optional and
// never reported.
func Validate(f Form) map[string]string {
	errs := make(map[string]string)

	required := []struct {
		name  string
		value string
	}{
		{FieldEmail, f.Email},
		{FieldPhone, f.Phone},
		{FieldFirstName, f.FirstName},
		{FieldLastName, f.LastName},
		{FieldAddress, f.Address},
		{FieldCity, f.City},
		{FieldPostalCode, f.PostalCode},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			errs[field.name] = MsgRequired
		}
	}

	if _, missing := errs[FieldEmail]; !missing && !emailPattern.MatchString(f.Email) {
		errs[FieldEmail] = MsgInvalidEmail
	}
	if _, missing := errs[FieldPhone]; !missing && !phonePattern.MatchString(f.Phone) {
		errs[FieldPhone] = MsgInvalidPhone
	}

	return errs
}

// State is the checkout flow state
type State int

const (
	Editing State = iota
	Submitting
	Complete
)

// OrderCreator is the gateway operation the controller depends on
type OrderCreator interface {
	CreateOrder(ctx context.Context, order *types.OrderRequest) types.Envelope[types.Order]
}

// Controller drives one checkout attempt. The cart is read-only from its
// point of view; the clear callback is the external collaborator that
// empties it after a confirmed order.
type Controller struct {
	items     []types.Product
	creator   OrderCreator
	clearCart func()
	alert     func(string)

	form        Form
	fieldErrors map[string]string
	state       State
	orderNumber string
}

// New creates a checkout controller over a snapshot of the cart items.
// alert is the blocking alert surface; clearCart is invoked exactly once,
// after a confirmed order.
func New(items []types.Product, creator OrderCreator, clearCart func(), alert func(string)) *Controller {
	return &Controller{
		items:       items,
		creator:     creator,
		clearCart:   clearCart,
		alert:       alert,
		fieldErrors: make(map[string]string),
		state:       Editing,
	}
}

// State returns the current flow state
func (c *Controller) State() State {
	return c.state
}

// Form returns the current field values
func (c *Controller) Form() Form {
	return c.form
}

// OrderNumber returns the confirmed order number once the flow is Complete
func (c *Controller) OrderNumber() string {
	return c.orderNumber
}

// FieldError returns the validation message for a field, if any
func (c *Controller) FieldError(name string) string {
	return c.fieldErrors[name]
}

// SetField updates one named field. Any stale validation message for that
// field is cleared so errors never persist across edits.
func (c *Controller) SetField(name, value string) error {
	switch name {
	case FieldEmail:
		c.form.Email = value
	case FieldPhone:
		c.form.Phone = value
	case FieldFirstName:
		c.form.FirstName = value
	case FieldLastName:
		c.form.LastName = value
	case FieldAddress:
		c.form.Address = value
	case FieldApartment:
		c.form.Apartment = value
	case FieldCity:
		c.form.City = value
	case FieldPostalCode:
		c.form.PostalCode = value
	default:
		return fmt.Errorf("unknown checkout field %q", name)
	}
	delete(c.fieldErrors, name)
	return nil
}

// SetForm replaces all field values at once (file-based checkout)
func (c *Controller) SetForm(f Form) {
	c.form = f
	c.fieldErrors = make(map[string]string)
}

// Submit validates the form, assembles the order request and sends it.
//
// An empty cart or a validation failure blocks the submission before any
// network call. On success the flow moves to Complete and the cart-clear
// collaborator fires once; on failure the flow returns to Editing with the
// entered values preserved so the user can retry without re-typing.
func (c *Controller) Submit(ctx context.Context) {
	if c.state == Submitting {
		return
	}

	if len(c.items) == 0 {
		c.alert("Your cart is empty")
		return
	}

	if errs := Validate(c.form); len(errs) > 0 {
		c.fieldErrors = errs
		return
	}

	c.state = Submitting

	resp := c.creator.CreateOrder(ctx, c.buildRequest())

	if resp.Success && resp.Data != nil {
		c.orderNumber = resp.Data.OrderNumber
		c.state = Complete
		if c.clearCart != nil {
			c.clearCart()
		}
		return
	}

	message := resp.Message
	if message == "" {
		message = "Unknown error"
	}
	c.alert("Order failed: " + message)
	c.state = Editing
}

// buildRequest assembles the wire payload from the form and cart.
// Quantity is hardcoded to 1 per line: the cart stores one entry per unit.
func (c *Controller) buildRequest() *types.OrderRequest {
	apartment := ""
	if c.form.Apartment != "" {
		apartment = c.form.Apartment + ", "
	}

	items := make([]types.OrderItemRequest, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, types.OrderItemRequest{
			ProductID: item.ID,
			Quantity:  1,
		})
	}

	return &types.OrderRequest{
		CustomerName:    fmt.Sprintf("%s %s", c.form.FirstName, c.form.LastName),
		CustomerEmail:   c.form.Email,
		CustomerPhone:   c.form.Phone,
		ShippingAddress: fmt.Sprintf("%s, %s%s %s", c.form.Address, apartment, c.form.City, c.form.PostalCode),
		Items:           items,
	}
}
