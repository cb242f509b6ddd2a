// Package match ranks names by edit distance to suggest the name a user
// probably meant, e.g. for an adapter type that could not be loaded.
package match
