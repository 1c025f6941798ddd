// Package core provides shared numeric helpers and physical constants
// used across the radiometry packages.
package core
