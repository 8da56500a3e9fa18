// Package hash provides the identifiers used to index variables by name.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a variable name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
