package customize

import (
	"fmt"
	"strings"

	"adapter-customizer/internal/analyze"
)

// Method names of the xmladapter.Adapter contract.
const (
	UnmarshalMethod = "Unmarshal"
	MarshalMethod   = "Marshal"
)

// CheckContract verifies that info implements xmladapter.Adapter[W, V] and
// returns the fully qualified names of W and V:
//
//	Unmarshal(W) (V, error)
//	Marshal(V) (W, error)
func CheckContract(info *analyze.TypeInfo) (wire, value string, err error) {
	if info.Kind == analyze.TypeKindInterface {
		return "", "", fmt.Errorf("%w: %s is an interface, generated code needs a concrete type", ErrNotAnAdapter, info.ID)
	}

	if len(info.TypeParams) > 0 {
		return "", "", fmt.Errorf("%w: %s is generic over [%s], generated code needs an instantiated type",
			ErrNotAnAdapter, info.ID, strings.Join(info.TypeParams, ", "))
	}

	unmarshal := info.Method(UnmarshalMethod)
	if !isConversion(unmarshal) {
		return "", "", fmt.Errorf("%w: %s has no method %s(W) (V, error)", ErrNotAnAdapter, info.ID, UnmarshalMethod)
	}

	marshal := info.Method(MarshalMethod)
	if !isConversion(marshal) {
		return "", "", fmt.Errorf("%w: %s has no method %s(V) (W, error)", ErrNotAnAdapter, info.ID, MarshalMethod)
	}

	wire, value = unmarshal.Params[0], unmarshal.Results[0]

	if marshal.Params[0] != value || marshal.Results[0] != wire {
		return "", "", fmt.Errorf("%w: %s converts %s to %s but back from %s to %s",
			ErrNotAnAdapter, info.ID, wire, value, marshal.Params[0], marshal.Results[0])
	}

	return wire, value, nil
}

// DefaultType returns the schema type name an adapter's wire type binds to.
// A pointer to the generated type binds the same schema type.
func DefaultType(wire string) string {
	return strings.TrimPrefix(wire, "*")
}

// DeclaredAdapter describes an adapter that cannot be loaded yet, typically
// because its wire type is generated in the same run.
func DeclaredAdapter(name, wire, value string) (*analyze.TypeInfo, error) {
	id, err := analyze.ParseTypeID(name)
	if err != nil {
		return nil, err
	}

	if wire == "" || value == "" {
		return nil, fmt.Errorf("adapter %s: wire and value types are required", name)
	}

	return &analyze.TypeInfo{
		ID:   id,
		Kind: analyze.TypeKindStruct,
		Methods: []analyze.MethodInfo{
			{Name: UnmarshalMethod, Params: []string{wire}, Results: []string{value, "error"}},
			{Name: MarshalMethod, Params: []string{value}, Results: []string{wire, "error"}},
		},
	}, nil
}

func isConversion(m *analyze.MethodInfo) bool {
	return m != nil &&
		len(m.Params) == 1 &&
		len(m.Results) == 2 &&
		m.Results[1] == "error"
}
