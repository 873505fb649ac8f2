package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonecast/config"
	"zonecast/infras/otel/mocks"
	"zonecast/internal/domains/clock"
	"zonecast/internal/domains/converter/resolver"
	"zonecast/internal/domains/converter/service"
	"zonecast/shared/timezone"
)

func setup(t *testing.T, targets ...string) *bytes.Buffer {
	t.Helper()

	cfg = &config.Config{}
	cfg.Converter.TargetZones = targets
	cfg.Defaults()

	provider := timezone.NewProvider(timezone.DefaultCatalog())
	converter = service.New(resolver.New(provider, cfg), provider, cfg, mocks.NewOtel())
	source = &clock.Source{
		Clock:    clock.FixedClock{Time: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)},
		Interval: time.Millisecond,
	}

	return &bytes.Buffer{}
}

func run(t *testing.T, cmd *cobra.Command, out *bytes.Buffer, args ...string) {
	t.Helper()

	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.ExecuteContext(context.Background()))
}

func TestConvert(t *testing.T) {
	out := setup(t, "America/New_York", "UTC", "Mars/Olympus_Mons")

	run(t, convertCmd(), out, "--date", "2024-07-15", "--time", "12:00")

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[0], "2024-07-15 12:00:00")
	assert.Contains(t, out.String(), "America/New York")
	assert.Contains(t, out.String(), "08:00:00 AM")
	assert.Contains(t, out.String(), "-04:00")
	assert.Contains(t, out.String(), "skipped Mars/Olympus_Mons")
}

func TestConvertWithoutTargets(t *testing.T) {
	out := setup(t, "UTC")

	run(t, convertCmd(), out)

	assert.Contains(t, out.String(), "2024-01-15 12:00:00")
	assert.Contains(t, out.String(), "No target time zones selected")
}

func TestZones(t *testing.T) {
	out := setup(t)

	run(t, zonesCmd(), out)

	assert.Contains(t, out.String(), "Asia/Kathmandu")
	assert.Contains(t, out.String(), "+05:45")
}

func TestClockStopsAfterCount(t *testing.T) {
	out := setup(t, "Asia/Tokyo")

	run(t, clockCmd(), out, "--count", "3")

	assert.Equal(t, 3, strings.Count(out.String(), "12:00:00 UTC"))
	assert.Equal(t, 3, strings.Count(out.String(), "09:00:00 PM"))
}
