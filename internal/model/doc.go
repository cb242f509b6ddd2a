// Package model is the in-memory schema model the adapter customizer patches.
//
// The model is owned by this module rather than borrowed from a compiler, so
// the slots a customization pass needs to overwrite are explicit:
//   - Element properties carry an adapter slot. SetAdapter is write-once;
//     ReplaceAdapter overwrites and returns the previous adapter.
//   - Attribute and Value properties carry a declared type slot (TypeUse).
//     ReplaceType is the only way to change it.
//
// Using a slot on a property kind that does not own it fails with ErrNoSlot.
//
// Property kinds form a closed set. Visit dispatches on the kind with an
// exhaustive switch; Model.Walk visits every property of every type in
// declaration order.
package model
