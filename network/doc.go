// Package network defines the domain primitives for an acequia system:
// Region (a water-holding node with demand and capacity), Canal (a directed,
// rate-limited connector between two regions), the Network container that
// indexes both by name, and Route/RoutePlan (an explicit, ordered list of
// candidate transfers).
//
// The package is deliberately passive: it stores and looks up state, clamps
// canal settings to their physical range, and nothing more. Water movement is
// the sim package's job; deciding which canals to open is the balance
// package's job.
//
// Lookups by name return nil for absent entries rather than an error — every
// consumer in this module treats a nil Region or Canal as a safe no-op.
// Construction, by contrast, is strict: AddRegion and AddCanal validate names
// and endpoints and return sentinel errors on misuse.
//
// Errors:
//
//	ErrEmptyName       - region or canal name is the empty string.
//	ErrDuplicateRegion - a region with the same name already exists.
//	ErrDuplicateCanal  - a canal with the same name already exists.
//	ErrUnknownRegion   - a canal endpoint names a region that does not exist.
package network
