package timezone_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"zonecast/config"
	"zonecast/shared/failure"
	"zonecast/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Lookup(t *testing.T) {
	provider := timezone.NewProvider(timezone.DefaultCatalog())

	tests := []struct {
		name         string
		zone         string
		instant      time.Time
		offset       time.Duration
		abbreviation string
		dst          bool
	}{
		{
			name:         "utc",
			zone:         "UTC",
			instant:      time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC),
			offset:       0,
			abbreviation: "UTC",
		},
		{
			name:         "new york standard time",
			zone:         "America/New_York",
			instant:      time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			offset:       -5 * time.Hour,
			abbreviation: "EST",
		},
		{
			name:         "new york daylight time",
			zone:         "America/New_York",
			instant:      time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC),
			offset:       -4 * time.Hour,
			abbreviation: "EDT",
			dst:          true,
		},
		{
			name:         "half hour zone",
			zone:         "Asia/Kolkata",
			instant:      time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC),
			offset:       5*time.Hour + 30*time.Minute,
			abbreviation: "IST",
		},
		{
			name:         "southern hemisphere summer",
			zone:         "Australia/Sydney",
			instant:      time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			offset:       11 * time.Hour,
			abbreviation: "AEDT",
			dst:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := provider.Lookup(tt.zone, tt.instant)

			require.NoError(t, err)
			assert.Equal(t, tt.offset, rule.Offset)
			assert.Equal(t, tt.abbreviation, rule.Abbreviation)
			assert.Equal(t, tt.dst, rule.DST)
		})
	}
}

func TestProvider_UTCOffsetIsAlwaysZero(t *testing.T) {
	provider := timezone.NewProvider(timezone.DefaultCatalog())

	for _, instant := range []time.Time{
		time.Date(1975, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 11, 3, 6, 0, 0, 0, time.UTC),
		time.Date(2099, 12, 31, 23, 59, 59, 0, time.UTC),
	} {
		rule, err := provider.Lookup("UTC", instant)

		require.NoError(t, err)
		assert.Zero(t, rule.Offset, instant.String())
	}
}

func TestProvider_UnknownZone(t *testing.T) {
	provider := timezone.NewProvider(timezone.NewCatalog("UTC", "Mars/Olympus_Mons"))

	tests := []struct {
		name string
		zone string
	}{
		{name: "not in catalog", zone: "Asia/Tokyo"},
		{name: "not in rule database", zone: "Mars/Olympus_Mons"},
		{name: "empty", zone: ""},
		{name: "local is never accepted", zone: "Local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.Lookup(tt.zone, time.Now())

			require.Error(t, err)
			assert.True(t, failure.IsUnknownZone(err))
		})
	}
}

func TestProvider_LocationIsReused(t *testing.T) {
	provider := timezone.NewProvider(timezone.DefaultCatalog())

	first, err := provider.Location("Europe/Paris")
	require.NoError(t, err)

	second, err := provider.Location("Europe/Paris")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestNewCatalog(t *testing.T) {
	catalog := timezone.NewCatalog("UTC", " Asia/Tokyo ", "", "UTC", "Europe/London")

	assert.Equal(t, []string{"UTC", "Asia/Tokyo", "Europe/London"}, catalog.Zones())
	assert.Equal(t, 3, catalog.Len())
	assert.True(t, catalog.Contains("Asia/Tokyo"))
	assert.False(t, catalog.Contains("America/Denver"))

	zones := catalog.Zones()
	zones[0] = "changed"
	assert.Equal(t, "UTC", catalog.Zones()[0])
}

func TestDefaultCatalog(t *testing.T) {
	catalog := timezone.DefaultCatalog()
	provider := timezone.NewProvider(catalog)

	assert.Equal(t, "UTC", catalog.Zones()[0])

	for _, zone := range catalog.Zones() {
		_, err := provider.Lookup(zone, time.Now())
		assert.NoError(t, err, zone)
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "zones.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("zones:\n  - UTC\n  - Asia/Jakarta\n  - UTC\n"), 0o600))

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("zones: []\n"), 0o600))

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("zones: [UTC\n"), 0o600))

	catalog, err := timezone.LoadCatalog(valid)
	require.NoError(t, err)
	assert.Equal(t, []string{"UTC", "Asia/Jakarta"}, catalog.Zones())

	_, err = timezone.LoadCatalog(empty)
	assert.Error(t, err)

	_, err = timezone.LoadCatalog(broken)
	assert.Error(t, err)

	_, err = timezone.LoadCatalog(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestNewCatalogFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zones: [Europe/Paris, UTC]\n"), 0o600))

	cfg := &config.Config{}
	assert.Equal(t, timezone.DefaultCatalog().Zones(), timezone.NewCatalogFromConfig(cfg).Zones())

	cfg.Converter.CatalogFile = path
	assert.Equal(t, []string{"Europe/Paris", "UTC"}, timezone.NewCatalogFromConfig(cfg).Zones())

	cfg.Converter.CatalogFile = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Equal(t, timezone.DefaultCatalog().Len(), timezone.NewCatalogFromConfig(cfg).Len())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "America/New York", timezone.DisplayName("America/New_York"))
	assert.Equal(t, "America/Port au Prince", timezone.DisplayName("America/Port_au_Prince"))
	assert.Equal(t, "UTC", timezone.DisplayName("UTC"))
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		offset   time.Duration
		expected string
	}{
		{offset: 0, expected: "+00:00"},
		{offset: 5*time.Hour + 45*time.Minute, expected: "+05:45"},
		{offset: -3*time.Hour - 30*time.Minute, expected: "-03:30"},
		{offset: -10 * time.Hour, expected: "-10:00"},
		{offset: 13*time.Hour + 45*time.Minute, expected: "+13:45"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, timezone.FormatOffset(tt.offset))
	}
}
