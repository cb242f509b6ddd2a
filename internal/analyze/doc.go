// Package analyze loads adapter types by their fully qualified name.
//
// PackageLoader uses golang.org/x/tools/go/packages and go/types to load the
// package that declares a type and describes its method set. StaticLoader
// serves types declared up front, for adapters whose packages depend on code
// that has not been generated yet. ChainLoader tries loaders in order.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind and exported method signatures of a loaded type
//   - TypeNotFoundError: the type could not be loaded, with known names in
//     the package when the package itself loaded
package analyze
