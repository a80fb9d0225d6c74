// Package utils provides small helpers shared across the application:
// path resolution relative to a base directory and safe file closing.
package utils
