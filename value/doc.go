// Package value defines the decoded value model produced by document
// construction.
//
// Decoded values are plain Go values:
//   - null -> nil
//   - bool -> bool
//   - integer -> int64, or *big.Int when out of int64 range
//   - float -> float64
//   - string -> string
//   - binary -> []byte
//   - timestamp -> time.Time
//   - sequence -> []any
//   - mapping -> *value.Map (insertion-ordered, keys compared by Equal)
//   - symbol -> value.Symbol
//   - unknown/private type -> *value.Private
package value
