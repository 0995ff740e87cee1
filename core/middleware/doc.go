// Package middleware groups the Fiber middleware shared by all features.
//
// # Subpackages
//
//   - rayid: assigns a correlation id (RayID) to every request so logs
//     emitted while serving it can be tied together.
//
// Register rayid first so every later handler can log with the id.
package middleware
