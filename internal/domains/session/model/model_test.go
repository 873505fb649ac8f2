package model_test

import (
	"testing"
	"time"
	cModel "zonecast/internal/domains/converter/model"
	"zonecast/internal/domains/session/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *model.Session {
	source := cModel.SourceSelection{
		Civil: cModel.NewCivilDateTime(2024, time.January, 15, 12, 0, 0),
		Zone:  "UTC",
	}

	return model.New("id", source, []cModel.ZoneID{"America/New_York", "UTC", "America/New_York"}, time.Unix(0, 0))
}

func TestNew(t *testing.T) {
	session := newSession()

	assert.Equal(t, []cModel.ZoneID{"America/New_York"}, session.Targets.Zones())
	assert.Equal(t, uint64(1), session.Version)
}

func TestSession_VersionOnlyMovesOnChange(t *testing.T) {
	session := newSession()

	assert.False(t, session.AddTarget("America/New_York"))
	assert.False(t, session.AddTarget("UTC"))
	assert.False(t, session.RemoveTarget("Asia/Tokyo"))
	assert.False(t, session.SetSource(session.Source))
	assert.Equal(t, uint64(1), session.Version)

	assert.True(t, session.AddTarget("Asia/Tokyo"))
	assert.True(t, session.RemoveTarget("America/New_York"))
	assert.True(t, session.SetSource(cModel.SourceSelection{Civil: session.Source.Civil, Zone: "Asia/Tokyo"}))
	assert.Equal(t, uint64(4), session.Version)

	// the target matching the new source stays
	assert.Equal(t, []cModel.ZoneID{"Asia/Tokyo"}, session.Targets.Zones())
}

func TestSession_Memo(t *testing.T) {
	session := newSession()

	_, ok := session.Memoized()
	assert.False(t, ok)

	conversion := cModel.Conversion{Source: session.Source}
	session.Memoize(conversion)

	memo, ok := session.Memoized()
	require.True(t, ok)
	assert.Equal(t, conversion, memo)

	session.AddTarget("Asia/Tokyo")

	_, ok = session.Memoized()
	assert.False(t, ok)
}

func TestSession_Expired(t *testing.T) {
	session := newSession()
	start := session.LastSeenAt

	assert.False(t, session.Expired(start.Add(time.Minute), time.Hour))
	assert.True(t, session.Expired(start.Add(2*time.Hour), time.Hour))
	assert.False(t, session.Expired(start.Add(2*time.Hour), 0))

	session.Touch(start.Add(90 * time.Minute))
	assert.False(t, session.Expired(start.Add(2*time.Hour), time.Hour))
}
