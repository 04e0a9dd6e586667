// Package utils provides general-purpose helper utilities used across
// different parts of the application: id generation, a replaceable clock and
// type-safe context keys.
package utils
