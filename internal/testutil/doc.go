// Package testutil contains helper builders and doubles used across tests to
// reduce boilerplate when constructing execution trees and asserting store
// interactions. They are not intended for production usage.
package testutil
