// Package cart holds the local shopping cart. The cart stores one entry per
// unit: adding the same product twice produces two lines.
package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/types"
)

// Store is a file-backed cart (~/.aura/cart.json)
type Store struct {
	path  string
	items []types.Product
}

// DefaultPath returns the cart file path (~/.aura/cart.json)
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".aura", "cart.json"), nil
}

// Load reads the cart from disk. A missing file yields an empty cart.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	if err := json.Unmarshal(data, &s.items); err != nil {
		return nil, fmt.Errorf("failed to parse cart file: %w", err)
	}

	return s, nil
}

// Save writes the cart to disk
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cart directory: %w", err)
	}

	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}

	return nil
}

// Items returns a snapshot of the cart contents
func (s *Store) Items() []types.Product {
	out := make([]types.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of lines in the cart
func (s *Store) Len() int {
	return len(s.items)
}

// Add appends one unit of a product
func (s *Store) Add(p types.Product) {
	s.items = append(s.items, p)
}

// Remove deletes the line at the given zero-based index
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("no cart line at position %d", index+1)
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

// Clear empties the cart
func (s *Store) Clear() {
	s.items = nil
}

// Subtotal sums the item prices. Totals are always derived from the current
// items, never stored, so they cannot drift from the cart contents.
func Subtotal(items []types.Product) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price
	}
	return sum
}

// Shipping is always free
func Shipping() float64 {
	return 0
}

// Total is subtotal plus shipping
func Total(items []types.Product) float64 {
	return Subtotal(items) + Shipping()
}
