package timezone

import (
	"fmt"
	"os"
	"strings"
	"time"
	"zonecast/config"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var defaultZones = []string{
	"UTC",
	"America/New_York",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Asia/Tokyo",
	"Asia/Shanghai",
	"Australia/Sydney",
	"Pacific/Auckland",
	"Asia/Dubai",
	"Asia/Kolkata",
	"America/Chicago",
	"America/Denver",
	"Europe/Berlin",
	"Africa/Cairo",
	"Asia/Singapore",
	"Pacific/Honolulu",
	"America/Anchorage",
	"America/Sao_Paulo",
	"America/St_Johns",
	"Atlantic/Azores",
	"Europe/Moscow",
	"Asia/Tehran",
	"Asia/Kathmandu",
	"Asia/Jakarta",
	"Australia/Adelaide",
	"Australia/Lord_Howe",
	"Pacific/Chatham",
}

// Catalog is the ordered list of zone names the provider accepts.
type Catalog struct {
	zones []string
	index map[string]struct{}
}

type catalogFile struct {
	Zones []string `yaml:"zones"`
}

// NewCatalog builds a catalog keeping the first occurrence of each non-blank name.
func NewCatalog(zones ...string) Catalog {
	catalog := Catalog{
		zones: make([]string, 0, len(zones)),
		index: make(map[string]struct{}, len(zones)),
	}

	for _, zone := range zones {
		zone = strings.TrimSpace(zone)
		if zone == "" {
			continue
		}

		if _, ok := catalog.index[zone]; ok {
			continue
		}

		catalog.index[zone] = struct{}{}
		catalog.zones = append(catalog.zones, zone)
	}

	return catalog
}

func DefaultCatalog() Catalog {
	return NewCatalog(defaultZones...)
}

// LoadCatalog reads a YAML document of the form "zones: [UTC, Asia/Tokyo]".
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	catalog := NewCatalog(file.Zones...)
	if catalog.Len() == 0 {
		return Catalog{}, fmt.Errorf("catalog file %s lists no zones", path)
	}

	return catalog, nil
}

// NewCatalogFromConfig loads the configured catalog file, falling back to the
// built-in catalog when none is set or it cannot be read.
func NewCatalogFromConfig(cfg *config.Config) Catalog {
	path := cfg.Converter.CatalogFile
	if path == "" {
		return DefaultCatalog()
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("falling back to the built-in zone catalog")

		return DefaultCatalog()
	}

	log.Info().Str("path", path).Int("zones", catalog.Len()).Msg("zone catalog loaded")

	return catalog
}

func (c Catalog) Zones() []string {
	return append([]string(nil), c.zones...)
}

func (c Catalog) Contains(zone string) bool {
	_, ok := c.index[zone]

	return ok
}

func (c Catalog) Len() int {
	return len(c.zones)
}

// DisplayName renders a zone name with underscores shown as spaces.
func DisplayName(zone string) string {
	return strings.ReplaceAll(zone, "_", " ")
}

// FormatOffset renders an offset as "+05:30" or "-03:00".
func FormatOffset(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	minutes := int(offset / time.Minute)

	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}
