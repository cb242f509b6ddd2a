package customize

import (
	"errors"
	"fmt"
	"strings"

	"adapter-customizer/internal/model"
)

var (
	// ErrMissingName is wrapped when a customization has no usable name attribute.
	ErrMissingName = errors.New("adapter name attribute is missing or blank")
	// ErrNotAnAdapter is wrapped when the named type does not satisfy the adapter contract.
	ErrNotAnAdapter = errors.New("type does not satisfy the xmladapter.Adapter contract")
)

// ConfigurationError is a problem in the schema customizations. It can only
// be fixed by changing the schema or the adapter code.
type ConfigurationError struct {
	Tag         model.QName
	Property    string   // display name of the property, if known
	Source      string   // where the customization was declared, if known
	Suggestions []string // similar adapter names, if any
	Err         error
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "failed to process customization %s", e.Tag)
	if e.Property != "" {
		fmt.Fprintf(&b, " on %s", e.Property)
	}

	if e.Source != "" {
		fmt.Fprintf(&b, " (declared at %s)", e.Source)
	}

	fmt.Fprintf(&b, ": %v", e.Err)

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InvariantError reports a model that cannot take the mutation the binder
// needs. It does not occur for a well-formed model.
type InvariantError struct {
	Tag      model.QName
	Property string
	Err      error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("failed to apply %s to property %s: %v", e.Tag, e.Property, e.Err)
}

// Unwrap returns the underlying error.
func (e *InvariantError) Unwrap() error {
	return e.Err
}
