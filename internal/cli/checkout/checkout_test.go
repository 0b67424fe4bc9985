package checkout

import (
	"context"
	"testing"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/types"
)

type fakeCreator struct {
	resp  types.Envelope[types.Order]
	calls int
	last  *types.OrderRequest
}

func (f *fakeCreator) CreateOrder(ctx context.Context, order *types.OrderRequest) types.Envelope[types.Order] {
	f.calls++
	f.last = order
	return f.resp
}

func validForm() Form {
	return Form{
		Email:      "mia@example.com",
		Phone:      "+81 90 1234 5678",
		FirstName:  "Mia",
		LastName:   "Ito",
		Address:    "12 Calm St",
		Apartment:  "Unit 4",
		City:       "Kyoto",
		PostalCode: "600-8001",
	}
}

func confirmedOrder(number string) types.Envelope[types.Order] {
	order := types.Order{OrderNumber: number}
	return types.Envelope[types.Order]{Success: true, Data: &order}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form)
		field   string
		wantMsg string
	}{
		{"valid form", func(f *Form) {}, "", ""},
		{"missing email", func(f *Form) { f.Email = "" }, FieldEmail, MsgRequired},
		{"blank city", func(f *Form) { f.City = "   " }, FieldCity, MsgRequired},
		{"missing postal code", func(f *Form) { f.PostalCode = "" }, FieldPostalCode, MsgRequired},
		{"email without domain", func(f *Form) { f.Email = "mia@" }, FieldEmail, MsgInvalidEmail},
		{"email with spaces", func(f *Form) { f.Email = "mia ito@example.com" }, FieldEmail, MsgInvalidEmail},
		{"phone too short", func(f *Form) { f.Phone = "+81 1" }, FieldPhone, MsgInvalidPhone},
		{"phone with letters", func(f *Form) { f.Phone = "call me" }, FieldPhone, MsgInvalidPhone},
		{"apartment optional", func(f *Form) { f.Apartment = "" }, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			errs := Validate(form)
			if tt.field == "" {
				if len(errs) != 0 {
					t.Errorf("unexpected errors: %v", errs)
				}
				return
			}
			if got := errs[tt.field]; got != tt.wantMsg {
				t.Errorf("errs[%s] = %q, want %q", tt.field, got, tt.wantMsg)
			}
		})
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	creator := &fakeCreator{resp: confirmedOrder("ORD-1")}
	var alerts []string
	c := New(nil, creator, nil, func(m string) { alerts = append(alerts, m) })
	c.SetForm(validForm())

	c.Submit(context.Background())

	if creator.calls != 0 {
		t.Errorf("network calls = %d, want 0", creator.calls)
	}
	if len(alerts) != 1 || alerts[0] != "Your cart is empty" {
		t.Errorf("alerts = %v", alerts)
	}
	if c.State() != Editing {
		t.Errorf("state = %v, want Editing", c.State())
	}
}

func TestSubmitValidationBlocksNetwork(t *testing.T) {
	creator := &fakeCreator{resp: confirmedOrder("ORD-1")}
	items := []types.Product{{ID: "aura-sound-01", Price: 120}}
	c := New(items, creator, nil, func(string) {})

	form := validForm()
	form.Email = "not-an-email"
	form.City = ""
	c.SetForm(form)

	c.Submit(context.Background())

	if creator.calls != 0 {
		t.Errorf("network calls = %d, want 0", creator.calls)
	}
	if got := c.FieldError(FieldEmail); got != MsgInvalidEmail {
		t.Errorf("email error = %q, want %q", got, MsgInvalidEmail)
	}
	if got := c.FieldError(FieldCity); got != MsgRequired {
		t.Errorf("city error = %q, want %q", got, MsgRequired)
	}
	if c.State() != Editing {
		t.Errorf("state = %v, want Editing", c.State())
	}
}

func TestSubmitSuccess(t *testing.T) {
	creator := &fakeCreator{resp: confirmedOrder("ORD-2024-0042")}
	items := []types.Product{{ID: "aura-sound-01", Price: 120}}
	clearCount := 0
	var alerts []string
	c := New(items, creator, func() { clearCount++ }, func(m string) { alerts = append(alerts, m) })
	c.SetForm(validForm())

	c.Submit(context.Background())

	if c.State() != Complete {
		t.Fatalf("state = %v, want Complete", c.State())
	}
	if got := c.OrderNumber(); got != "ORD-2024-0042" {
		t.Errorf("order number = %q", got)
	}
	if clearCount != 1 {
		t.Errorf("cart cleared %d times, want exactly 1", clearCount)
	}
	if len(alerts) != 0 {
		t.Errorf("unexpected alerts: %v", alerts)
	}
}

func TestSubmitFailurePreservesEverything(t *testing.T) {
	creator := &fakeCreator{
		resp: types.Envelope[types.Order]{Success: false, Message: "Payment declined"},
	}
	items := []types.Product{{ID: "aura-sound-01", Price: 120}}
	clearCount := 0
	var alerts []string
	c := New(items, creator, func() { clearCount++ }, func(m string) { alerts = append(alerts, m) })
	c.SetForm(validForm())

	c.Submit(context.Background())

	if len(alerts) != 1 || alerts[0] != "Order failed: Payment declined" {
		t.Errorf("alerts = %v", alerts)
	}
	if c.State() != Editing {
		t.Errorf("state = %v, want Editing", c.State())
	}
	if clearCount != 0 {
		t.Errorf("cart cleared on failure")
	}
	if got := c.Form(); got != validForm() {
		t.Errorf("form values not preserved: %+v", got)
	}

	// The user can retry straight away with the same details
	creator.resp = confirmedOrder("ORD-3")
	c.Submit(context.Background())
	if c.State() != Complete {
		t.Errorf("retry state = %v, want Complete", c.State())
	}
	if clearCount != 1 {
		t.Errorf("cart cleared %d times after retry, want 1", clearCount)
	}
}

func TestSubmitFailureWithoutMessage(t *testing.T) {
	creator := &fakeCreator{resp: types.Envelope[types.Order]{Success: false}}
	items := []types.Product{{ID: "p1"}}
	var alerts []string
	c := New(items, creator, nil, func(m string) { alerts = append(alerts, m) })
	c.SetForm(validForm())

	c.Submit(context.Background())

	if len(alerts) != 1 || alerts[0] != "Order failed: Unknown error" {
		t.Errorf("alerts = %v", alerts)
	}
}

func TestSubmitSuccessWithoutBody(t *testing.T) {
	// success=true but no order payload is still a failed checkout
	creator := &fakeCreator{resp: types.Envelope[types.Order]{Success: true}}
	items := []types.Product{{ID: "p1"}}
	clearCount := 0
	var alerts []string
	c := New(items, creator, func() { clearCount++ }, func(m string) { alerts = append(alerts, m) })
	c.SetForm(validForm())

	c.Submit(context.Background())

	if c.State() != Editing {
		t.Errorf("state = %v, want Editing", c.State())
	}
	if clearCount != 0 {
		t.Errorf("cart cleared without a confirmed order")
	}
	if len(alerts) != 1 {
		t.Errorf("alerts = %v", alerts)
	}
}

func TestBuildRequestAddressAndQuantities(t *testing.T) {
	items := []types.Product{
		{ID: "aura-sound-01", Price: 120},
		{ID: "aura-sound-01", Price: 120}, // duplicate entry means two units
		{ID: "aura-halo-02", Price: 85},
	}
	creator := &fakeCreator{resp: confirmedOrder("ORD-9")}
	c := New(items, creator, nil, func(string) {})
	c.SetForm(validForm())

	c.Submit(context.Background())

	req := creator.last
	if req == nil {
		t.Fatal("no request captured")
	}
	if req.CustomerName != "Mia Ito" {
		t.Errorf("customer name = %q", req.CustomerName)
	}
	if want := "12 Calm St, Unit 4, Kyoto 600-8001"; req.ShippingAddress != want {
		t.Errorf("address = %q, want %q", req.ShippingAddress, want)
	}
	if len(req.Items) != 3 {
		t.Fatalf("line items = %d, want 3", len(req.Items))
	}
	for i, item := range req.Items {
		if item.Quantity != 1 {
			t.Errorf("items[%d].Quantity = %d, want 1", i, item.Quantity)
		}
	}
}

func TestBuildRequestAddressWithoutApartment(t *testing.T) {
	creator := &fakeCreator{resp: confirmedOrder("ORD-9")}
	c := New([]types.Product{{ID: "p1"}}, creator, nil, func(string) {})
	form := validForm()
	form.Apartment = ""
	c.SetForm(form)

	c.Submit(context.Background())

	if want := "12 Calm St, Kyoto 600-8001"; creator.last.ShippingAddress != want {
		t.Errorf("address = %q, want %q", creator.last.ShippingAddress, want)
	}
}

func TestSetFieldClearsStaleError(t *testing.T) {
	c := New([]types.Product{{ID: "p1"}}, &fakeCreator{}, nil, func(string) {})
	form := validForm()
	form.Email = "bad"
	c.SetForm(form)

	c.Submit(context.Background())
	if c.FieldError(FieldEmail) == "" {
		t.Fatal("expected a validation error for email")
	}

	if err := c.SetField(FieldEmail, "mia@example.com"); err != nil {
		t.Fatal(err)
	}
	if got := c.FieldError(FieldEmail); got != "" {
		t.Errorf("stale error survived edit: %q", got)
	}
}

func TestSetFieldUnknownName(t *testing.T) {
	c := New(nil, &fakeCreator{}, nil, func(string) {})
	if err := c.SetField("favouriteColour", "blue"); err == nil {
		t.Error("expected an error for an unknown field")
	}
}
