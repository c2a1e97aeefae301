// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (wire/state) and contracts (interfaces) only.
//
// Types live in the types subpackage and interfaces in the interfaces
// subpackage; both are re-exported here as aliases.
package domain
