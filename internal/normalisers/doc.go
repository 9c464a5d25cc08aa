// Package normalisers converts upstream vehicle-data rows into domain records.
//
// Normalisers are pure: they perform no I/O and hold no state, so a single
// instance is shared by every request.
package normalisers
