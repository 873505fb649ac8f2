// Package commands defines the zonecast CLI.
//
// Commands
//
//   - convert   Convert a date and time from the source zone into the target zones
//   - zones     List the zone catalog with each zone's current time
//   - clock     Print live clocks for the source and target zones once per tick
//
// The root command loads the configuration and builds the converter before any
// subcommand runs. Flags override the configured source zone, targets and basis.
package commands
