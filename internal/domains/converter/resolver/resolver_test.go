package resolver_test

import (
	"testing"
	"time"
	"zonecast/config"
	"zonecast/internal/domains/converter/model"
	"zonecast/internal/domains/converter/resolver"
	"zonecast/shared/failure"
	"zonecast/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(refine bool) resolver.Resolver {
	return resolver.NewWithRefinement(timezone.NewProvider(timezone.DefaultCatalog()), refine)
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		zone         model.ZoneID
		civil        model.CivilDateTime
		refine       bool
		offset       time.Duration
		abbreviation string
	}{
		{
			name:         "utc",
			zone:         "UTC",
			civil:        model.NewCivilDateTime(2024, time.March, 10, 2, 30, 0),
			refine:       true,
			offset:       0,
			abbreviation: "UTC",
		},
		{
			name:         "new york winter",
			zone:         "America/New_York",
			civil:        model.NewCivilDateTime(2024, time.January, 15, 7, 0, 0),
			refine:       true,
			offset:       -5 * time.Hour,
			abbreviation: "EST",
		},
		{
			name:         "new york summer",
			zone:         "America/New_York",
			civil:        model.NewCivilDateTime(2024, time.July, 15, 8, 0, 0),
			refine:       true,
			offset:       -4 * time.Hour,
			abbreviation: "EDT",
		},
		{
			name:         "refinement corrects the hours after spring forward",
			zone:         "America/New_York",
			civil:        model.NewCivilDateTime(2024, time.March, 10, 4, 0, 0),
			refine:       true,
			offset:       -4 * time.Hour,
			abbreviation: "EDT",
		},
		{
			name:         "baseline approximation is off by the transition delta",
			zone:         "America/New_York",
			civil:        model.NewCivilDateTime(2024, time.March, 10, 4, 0, 0),
			refine:       false,
			offset:       -5 * time.Hour,
			abbreviation: "EST",
		},
		{
			name:         "spring forward gap keeps the literal lookup",
			zone:         "America/New_York",
			civil:        model.NewCivilDateTime(2024, time.March, 10, 2, 30, 0),
			refine:       true,
			offset:       -5 * time.Hour,
			abbreviation: "EST",
		},
		{
			name:         "fall back overlap resolves to the first reading",
			zone:         "America/New_York",
			civil:        model.NewCivilDateTime(2024, time.November, 3, 1, 30, 0),
			refine:       true,
			offset:       -4 * time.Hour,
			abbreviation: "EDT",
		},
		{
			name:         "london gap keeps the literal lookup",
			zone:         "Europe/London",
			civil:        model.NewCivilDateTime(2024, time.March, 31, 1, 30, 0),
			refine:       true,
			offset:       time.Hour,
			abbreviation: "BST",
		},
		{
			name:         "london overlap resolves to the literal lookup",
			zone:         "Europe/London",
			civil:        model.NewCivilDateTime(2024, time.October, 27, 1, 30, 0),
			refine:       true,
			offset:       0,
			abbreviation: "GMT",
		},
		{
			name:         "sydney dst ends in april",
			zone:         "Australia/Sydney",
			civil:        model.NewCivilDateTime(2024, time.April, 10, 12, 0, 0),
			refine:       true,
			offset:       10 * time.Hour,
			abbreviation: "AEST",
		},
		{
			name:         "quarter hour zone",
			zone:         "Asia/Kathmandu",
			civil:        model.NewCivilDateTime(2024, time.June, 1, 9, 0, 0),
			refine:       true,
			offset:       5*time.Hour + 45*time.Minute,
			abbreviation: "+0545",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := newResolver(tt.refine).Resolve(tt.zone, tt.civil)

			require.NoError(t, err)
			assert.Equal(t, tt.offset, rule.Offset)
			assert.Equal(t, tt.abbreviation, rule.Abbreviation)
		})
	}
}

func TestResolver_UnknownZone(t *testing.T) {
	_, err := newResolver(true).Resolve("Atlantis/Capital", model.NewCivilDateTime(2024, time.January, 1, 0, 0, 0))

	require.Error(t, err)
	assert.True(t, failure.IsUnknownZone(err))
}

func TestResolver_UsesConfiguredRefinement(t *testing.T) {
	cfg := &config.Config{}
	refine := false
	cfg.Converter.RefineOffsets = &refine

	r := resolver.New(timezone.NewProvider(timezone.DefaultCatalog()), cfg)

	rule, err := r.Resolve("America/New_York", model.NewCivilDateTime(2024, time.March, 10, 4, 0, 0))

	require.NoError(t, err)
	assert.Equal(t, -5*time.Hour, rule.Offset)
}
