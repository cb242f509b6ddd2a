package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// ErrTypeNotFound is matched by every error a Loader returns for a type it cannot load.
var ErrTypeNotFound = errors.New("type not found")

// TypeNotFoundError reports a type that could not be loaded.
type TypeNotFoundError struct {
	Name  string   // requested fully qualified name
	Known []string // exported type names of the package, if it loaded
	Err   error    // underlying load failure, if any
}

func (e *TypeNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("type %s not found: %v", e.Name, e.Err)
	}

	return fmt.Sprintf("type %s not found", e.Name)
}

// Unwrap returns the underlying load failure.
func (e *TypeNotFoundError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTypeNotFound.
func (e *TypeNotFoundError) Is(target error) bool {
	return target == ErrTypeNotFound
}

// Loader loads a type by its fully qualified name ("import/path.Type").
// A failure to find the type is an expected outcome and is reported with an
// error matching ErrTypeNotFound.
type Loader interface {
	LoadType(name string) (*TypeInfo, error)
}

// PackageLoader loads types from Go packages with go/packages. Packages are
// loaded once per import path and cached. It is not safe for concurrent use.
type PackageLoader struct {
	// Dir is the directory go/packages runs in. Empty means the current directory.
	Dir string

	pkgs map[string]*packages.Package
	errs map[string]error
}

// NewPackageLoader creates a PackageLoader running in dir.
func NewPackageLoader(dir string) *PackageLoader {
	return &PackageLoader{
		Dir:  dir,
		pkgs: make(map[string]*packages.Package),
		errs: make(map[string]error),
	}
}

// Preload loads the packages matching patterns into the cache.
// Patterns are standard Go package patterns (e.g., "./adapters/...").
func (l *PackageLoader) Preload(patterns ...string) error {
	pkgs, err := packages.Load(l.config(), patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		if err := packageErrors(pkg); err != nil {
			errs = append(errs, err)
			continue
		}

		l.pkgs[pkg.PkgPath] = pkg
	}

	return errors.Join(errs...)
}

// LoadType implements Loader.
func (l *PackageLoader) LoadType(name string) (*TypeInfo, error) {
	id, err := ParseTypeID(name)
	if err != nil {
		return nil, &TypeNotFoundError{Name: name, Err: err}
	}

	pkg, err := l.loadPackage(id.PkgPath)
	if err != nil {
		return nil, &TypeNotFoundError{Name: name, Err: err}
	}

	tn, ok := pkg.Types.Scope().Lookup(id.Name).(*types.TypeName)
	if !ok || !tn.Exported() {
		return nil, &TypeNotFoundError{Name: name, Known: exportedTypeNames(pkg)}
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, &TypeNotFoundError{Name: name, Err: fmt.Errorf("%s is an alias of an unnamed type", name)}
	}

	return Describe(named), nil
}

func (l *PackageLoader) config() *packages.Config {
	return &packages.Config{
		Mode: LoadMode,
		Dir:  l.Dir,
	}
}

func (l *PackageLoader) loadPackage(path string) (*packages.Package, error) {
	if l.pkgs == nil {
		l.pkgs = make(map[string]*packages.Package)
		l.errs = make(map[string]error)
	}

	if pkg, ok := l.pkgs[path]; ok {
		return pkg, nil
	}

	if err, ok := l.errs[path]; ok {
		return nil, err
	}

	pkg, err := l.loadUncached(path)
	if err != nil {
		l.errs[path] = err
		return nil, err
	}

	l.pkgs[path] = pkg

	return pkg, nil
}

func (l *PackageLoader) loadUncached(path string) (*packages.Package, error) {
	pkgs, err := packages.Load(l.config(), path)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", path, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages", path, len(pkgs))
	}

	if err := packageErrors(pkgs[0]); err != nil {
		return nil, err
	}

	return pkgs[0], nil
}

func packageErrors(pkg *packages.Package) error {
	if len(pkg.Errors) == 0 {
		return nil
	}

	errs := make([]error, 0, len(pkg.Errors))
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}

	return fmt.Errorf("package %s errors: %w", pkg.PkgPath, errors.Join(errs...))
}

func exportedTypeNames(pkg *packages.Package) []string {
	var names []string

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		if tn, ok := scope.Lookup(name).(*types.TypeName); ok && tn.Exported() {
			names = append(names, TypeID{PkgPath: pkg.PkgPath, Name: name}.String())
		}
	}

	return names
}

// StaticLoader serves types registered up front.
type StaticLoader struct {
	types map[string]*TypeInfo
}

// NewStaticLoader creates a StaticLoader holding infos.
func NewStaticLoader(infos ...*TypeInfo) *StaticLoader {
	l := &StaticLoader{types: make(map[string]*TypeInfo)}
	for _, info := range infos {
		l.Register(info)
	}

	return l
}

// Register adds or replaces a type.
func (l *StaticLoader) Register(info *TypeInfo) {
	l.types[info.ID.String()] = info
}

// LoadType implements Loader.
func (l *StaticLoader) LoadType(name string) (*TypeInfo, error) {
	if info, ok := l.types[name]; ok {
		return info, nil
	}

	return nil, &TypeNotFoundError{Name: name, Known: l.names()}
}

func (l *StaticLoader) names() []string {
	names := make([]string, 0, len(l.types))
	for name := range l.types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// ChainLoader tries each loader in order and returns the first type found.
// Errors other than ErrTypeNotFound stop the chain.
type ChainLoader []Loader

// LoadType implements Loader.
func (c ChainLoader) LoadType(name string) (*TypeInfo, error) {
	notFound := &TypeNotFoundError{Name: name}

	for _, l := range c {
		info, err := l.LoadType(name)
		if err == nil {
			return info, nil
		}

		var nf *TypeNotFoundError
		if !errors.As(err, &nf) {
			if errors.Is(err, ErrTypeNotFound) {
				continue
			}

			return nil, err
		}

		notFound.Known = append(notFound.Known, nf.Known...)
		if notFound.Err == nil {
			notFound.Err = nf.Err
		}
	}

	return nil, notFound
}
