// Package scenario loads acequia scenarios from YAML and assembles them into
// a runnable simulation.
//
// A scenario file names the regions (level, need, capacity), the canals
// (directed endpoints), an optional explicit route plan, and the hour
// ceiling. When no routes are given, the classic letter convention is
// applied: the canal whose name contains "A" runs North→South, "B"
// South→East, "C" North→East, "D" East→North, evaluated in priority order
// A, C, B, D. A canal claims the first letter its name contains in scan
// order A, B, C, D; a letter claimed by two canals is a configuration
// error — explicit routes are the way out of the convention.
//
// Load follows the usual shape: empty path yields the built-in classic
// triangle, otherwise the file is read, unmarshalled, normalized and
// validated. Build never partially constructs: it returns a Manager and a
// RoutePlan or an error.
package scenario
