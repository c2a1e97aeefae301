// Package contracts instantiates registered plugins into compiled contracts
// and keeps the resulting records.
package contracts
