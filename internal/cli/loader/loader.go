package loader

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/checkout"
)

// ShippingFile represents checkout details loaded from a YAML file,
// used by `aura checkout -f`.
type ShippingFile struct {
	// Kind must be "ShippingDetails"
	Kind string `yaml:"kind"`
	// Spec contains the contact and shipping fields
	Spec ShippingSpec `yaml:"spec"`
}

// ShippingSpec mirrors the checkout form fields
type ShippingSpec struct {
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone"`
	FirstName  string `yaml:"firstName"`
	LastName   string `yaml:"lastName"`
	Address    string `yaml:"address"`
	Apartment  string `yaml:"apartment,omitempty"`
	City       string `yaml:"city"`
	PostalCode string `yaml:"postalCode"`
}

// LoadFromFile loads shipping details from a YAML file
func LoadFromFile(filepath string) (*ShippingFile, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var file ShippingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if file.Kind == "" {
		return nil, fmt.Errorf("'kind' field is required")
	}
	if file.Kind != "ShippingDetails" {
		return nil, fmt.Errorf("invalid kind '%s', must be 'ShippingDetails'", file.Kind)
	}

	return &file, nil
}

// ToForm converts the loaded spec into a checkout form. Field-level
// validation happens in the checkout controller, not here.
func (f *ShippingFile) ToForm() checkout.Form {
	return checkout.Form{
		Email:      f.Spec.Email,
		Phone:      f.Spec.Phone,
		FirstName:  f.Spec.FirstName,
		LastName:   f.Spec.LastName,
		Address:    f.Spec.Address,
		Apartment:  f.Spec.Apartment,
		City:       f.Spec.City,
		PostalCode: f.Spec.PostalCode,
	}
}
