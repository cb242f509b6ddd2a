// Package xmladapter defines the conversion contract that generated bindings
// call when a schema property carries an xmlAdapter customization.
//
// W is the wire type, the Go type generated for the schema type. V is the
// application type the generated field exposes instead.
package xmladapter

// Adapter converts between a wire value and an application value.
type Adapter[W, V any] interface {
	Unmarshal(w W) (V, error)
	Marshal(v V) (W, error)
}

// Func adapts a pair of conversion functions to the Adapter contract.
type Func[W, V any] struct {
	UnmarshalFunc func(W) (V, error)
	MarshalFunc   func(V) (W, error)
}

// Unmarshal converts a wire value into the application value.
func (f Func[W, V]) Unmarshal(w W) (V, error) {
	return f.UnmarshalFunc(w)
}

// Marshal converts an application value back into its wire form.
func (f Func[W, V]) Marshal(v V) (W, error) {
	return f.MarshalFunc(v)
}

var _ Adapter[string, int] = Func[string, int]{}
