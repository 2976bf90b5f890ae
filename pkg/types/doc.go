// Package types defines the entity types, enumeration constants, update
// structs, and standard error values for the Worktop tracking system.
package types
