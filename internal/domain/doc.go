// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (results/state) and contracts (interfaces) only.
package domain
