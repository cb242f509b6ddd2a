// Package customize applies xmlAdapter customizations to a schema model.
//
// For every element and attribute property the Resolver picks the winning
// customization, loads the adapter type it names and checks it against the
// xmladapter.Adapter contract. The Binder then attaches the adapter to the
// model.
//
// # Precedence
//
// Candidates come from the property itself and from each type it references.
// The winner is the highest ranked candidate, where:
//  1. a type-level customization outranks a property-level one;
//  2. among type-level ones, the type referenced last wins;
//  3. on one target, the customization declared last wins.
//
// This is the order of pushing the property's customizations and then each
// referenced type's onto a stack and popping the top. Reversing it silently
// changes which adapter applies.
//
// # Binding
//
// For an element property, each referenced type is checked in order:
//   - its name equals the adapter's wire type: the adapter is set on the
//     property, replacing (and reporting) an adapter that is already there;
//   - it is a complex type with a Value member of the wire type: the member's
//     declared type is adapted instead of the element;
//   - otherwise an adapter_not_attached error diagnostic is reported and the
//     next reference is checked.
//
// An attribute property always has its declared type replaced by the adapted
// type.
package customize
