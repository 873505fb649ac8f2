// Package timezone is the zone rule provider backing every conversion.
//
// Usage Examples:
//
//  1. Looking up the rule a zone observes at an instant:
//     provider := timezone.NewProvider(timezone.DefaultCatalog())
//     rule, err := provider.Lookup("America/New_York", time.Now())
//     // rule.Offset is local - UTC, rule.Abbreviation is "EST" or "EDT"
//
//  2. Loading a catalog from a YAML file:
//     catalog, err := timezone.LoadCatalog("zones.yaml")
//
//  3. Rendering a zone for display:
//     timezone.DisplayName("America/Los_Angeles") // "America/Los Angeles"
//
// Supported zone names are standard IANA names such as "UTC", "Asia/Jakarta",
// "America/New_York" or "Europe/London". A zone outside the catalog, or one the
// rule database does not know, fails with failure.ErrUnknownZone.
//
// The rule database is embedded through time/tzdata so lookups do not depend on
// the host's zoneinfo files.
package timezone
