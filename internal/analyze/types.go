package analyze

import (
	"fmt"
	"go/types"
	"strings"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "adapter-customizer/examples/amount"
	Name    string // e.g., "AmountXMLAdapter"
}

// String returns the fully qualified name.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// ParseTypeID splits a fully qualified name at its last dot.
// The package path may itself contain dots ("example.com/x/y.Type").
func ParseTypeID(name string) (TypeID, error) {
	name = strings.TrimSpace(name)

	dot := strings.LastIndexByte(name, '.')
	slash := strings.LastIndexByte(name, '/')

	if dot <= 0 || dot < slash || dot == len(name)-1 {
		return TypeID{}, fmt.Errorf("%q is not a fully qualified type name (want import/path.Type)", name)
	}

	return TypeID{PkgPath: name[:dot], Name: name[dot+1:]}, nil
}

// TypeKind represents the kind of a loaded type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindStruct             // named struct
	TypeKindBasic              // named basic type, e.g. type Code string
	TypeKindInterface          // named interface
	TypeKindOther              // any other named type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindBasic:
		return "basic"
	case TypeKindInterface:
		return "interface"
	case TypeKindOther:
		return "other"
	default:
		return "unknown"
	}
}

// MethodInfo is an exported method signature with fully qualified type names.
type MethodInfo struct {
	Name    string
	Params  []string // e.g., ["adapter-customizer/examples/amount.Amount"]
	Results []string // e.g., ["adapter-customizer/examples/amount.Money", "error"]
}

// TypeInfo describes a loaded type.
type TypeInfo struct {
	ID      TypeID
	Kind    TypeKind
	Methods []MethodInfo

	// TypeParams lists the type parameters of a generic type. Method
	// signatures of a generic type refer to them by name.
	TypeParams []string
}

// Method returns the named method, or nil.
func (t *TypeInfo) Method(name string) *MethodInfo {
	for i := range t.Methods {
		if t.Methods[i].Name == name {
			return &t.Methods[i]
		}
	}

	return nil
}

// Describe builds a TypeInfo from a named go/types type.
func Describe(named *types.Named) *TypeInfo {
	obj := named.Obj()

	info := &TypeInfo{
		ID: TypeID{Name: obj.Name()},
	}
	if obj.Pkg() != nil {
		info.ID.PkgPath = obj.Pkg().Path()
	}

	switch named.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
	case *types.Basic:
		info.Kind = TypeKindBasic
	case *types.Interface:
		info.Kind = TypeKindInterface
	default:
		info.Kind = TypeKindOther
	}

	for i := range named.TypeParams().Len() {
		info.TypeParams = append(info.TypeParams, named.TypeParams().At(i).Obj().Name())
	}

	// The pointer method set includes value receiver methods. Pointers to
	// interfaces have no methods.
	mset := types.NewMethodSet(named)
	if info.Kind != TypeKindInterface {
		mset = types.NewMethodSet(types.NewPointer(named))
	}

	for i := range mset.Len() {
		fn, ok := mset.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok {
			continue
		}

		info.Methods = append(info.Methods, MethodInfo{
			Name:    fn.Name(),
			Params:  tupleNames(sig.Params()),
			Results: tupleNames(sig.Results()),
		})
	}

	return info
}

func tupleNames(t *types.Tuple) []string {
	names := make([]string, 0, t.Len())
	for i := range t.Len() {
		names = append(names, types.TypeString(t.At(i).Type(), nil))
	}

	return names
}
