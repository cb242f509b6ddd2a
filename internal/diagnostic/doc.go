// Package diagnostic collects the reports of a customization pass.
//
// Informational entries record every adapter that was applied, overridden
// or shadowed. Error entries record adapters that resolved but could not be
// attached; they do not stop the pass. A Reporter records entries and logs
// them through zap as they happen.
package diagnostic
