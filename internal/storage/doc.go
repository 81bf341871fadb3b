// Package storage defines the persistence interfaces for named
// generator states. Implementations live in subpackages.
package storage
