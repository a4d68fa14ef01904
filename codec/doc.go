// Package codec converts wire-level variable representations to and from the
// opaque values handled by the scope package.
//
// Typed values are decoded through go-cty: the declared type name selects a
// cty type, the JSON value is unmarshaled with cty/json and converted into its
// native Go counterpart with cty/gocty. Untyped values use the implied cty
// type of the JSON document.
package codec
