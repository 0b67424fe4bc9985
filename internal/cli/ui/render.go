package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/cart"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/types"
)

var (
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1)
)

// RenderProductList renders the catalog as an aligned list
func RenderProductList(products []types.Product) string {
	if len(products) == 0 {
		return categoryStyle.Render("No products found")
	}

	var b strings.Builder
	for _, p := range products {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			nameStyle.Render(p.Name),
			categoryStyle.Render(fmt.Sprintf("[%s] %s", p.Category, p.ID)),
			priceStyle.Render(fmt.Sprintf("$%.2f", p.Price)),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderProductDetail renders one product with its description
func RenderProductDetail(p types.Product) string {
	lines := []string{
		nameStyle.Render(p.Name),
		categoryStyle.Render(fmt.Sprintf("%s · %s", p.Category, p.ID)),
		priceStyle.Render(fmt.Sprintf("$%.2f", p.Price)),
	}
	if p.Description != "" {
		lines = append(lines, "", p.Description)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderCartTree renders the cart as a tree with derived totals
func RenderCartTree(items []types.Product) string {
	if len(items) == 0 {
		return categoryStyle.Render("Your cart is empty")
	}

	root := tree.Root(nameStyle.Render("Cart"))
	for i, item := range items {
		root.Child(fmt.Sprintf("%d. %s %s %s",
			i+1,
			item.Name,
			categoryStyle.Render(item.Category),
			priceStyle.Render(fmt.Sprintf("$%.2f", item.Price)),
		))
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Subtotal $%.2f · Shipping Free · Total $%.2f",
		cart.Subtotal(items), cart.Total(items),
	))

	return root.String() + "\n" + summary
}

// RenderOrderTree renders a placed order with its line items
func RenderOrderTree(order types.Order) string {
	root := tree.Root(nameStyle.Render("Order " + order.OrderNumber))
	root.Child(categoryStyle.Render("Customer: ") + order.CustomerName)
	root.Child(categoryStyle.Render("Ship to:  ") + order.ShippingAddress)
	root.Child(categoryStyle.Render("Status:   ") + statusStyle.Render(order.Status))

	itemsNode := tree.Root("Items")
	for _, item := range order.Items {
		itemsNode.Child(fmt.Sprintf("%s ×%d %s",
			item.ProductName,
			item.Quantity,
			priceStyle.Render(fmt.Sprintf("$%.2f", item.Subtotal)),
		))
	}
	root.Child(itemsNode)
	root.Child(priceStyle.Render(fmt.Sprintf("Total $%.2f", order.TotalAmount)))

	return root.String()
}

// RenderOrderSummaryLine renders one order for list output
func RenderOrderSummaryLine(order types.Order) string {
	return fmt.Sprintf("%s  %s  %s  %s",
		nameStyle.Render(order.OrderNumber),
		categoryStyle.Render(order.CreatedAt),
		statusStyle.Render(order.Status),
		priceStyle.Render(fmt.Sprintf("$%.2f", order.TotalAmount)),
	)
}
