package dto_test

import (
	"testing"
	"time"

	"zonecast/internal/domains/converter/model"
	"zonecast/internal/domains/converter/model/dto"
	"zonecast/shared/constant"
	"zonecast/shared/failure"
	"zonecast/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertRequest_ToModel(t *testing.T) {
	req := dto.ConvertRequest{
		Date:        "2024-01-15",
		Time:        "07:30",
		SourceZone:  "America/New_York",
		TargetZones: []string{"Asia/Tokyo", "UTC"},
	}

	selection, targets, err := req.ToModel()

	require.NoError(t, err)
	assert.Equal(t, model.NewCivilDateTime(2024, time.January, 15, 7, 30, 0), selection.Civil)
	assert.Equal(t, model.ZoneID("America/New_York"), selection.Zone)
	assert.Equal(t, []model.ZoneID{"Asia/Tokyo", "UTC"}, targets)
}

func TestConvertRequest_ToModelRejectsBadClock(t *testing.T) {
	req := dto.ConvertRequest{Date: "2024-01-15", Time: "7h30", SourceZone: "UTC"}

	_, _, err := req.ToModel()

	require.Error(t, err)
	assert.True(t, failure.IsInvalidCivilDateTime(err))
}

func TestConvertRequest_Validation(t *testing.T) {
	valid := dto.ConvertRequest{Date: "2024-01-15", Time: "07:30:15", SourceZone: "UTC"}
	require.NoError(t, validator.ValidateStruct(&valid))

	missingZone := dto.ConvertRequest{Date: "2024-01-15", Time: "07:30"}
	assert.Error(t, validator.ValidateStruct(&missingZone))

	duplicates := dto.ConvertRequest{Date: "2024-01-15", Time: "07:30", SourceZone: "UTC", TargetZones: []string{"UTC", "UTC"}}
	assert.Error(t, validator.ValidateStruct(&duplicates))
}

func TestConversionResponse_FromModel(t *testing.T) {
	conversion := model.Conversion{
		Source: model.SourceSelection{Civil: model.NewCivilDateTime(2024, time.January, 15, 12, 0, 0), Zone: "UTC"},
		UTC:    time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Times: []model.ConvertedTime{
			{
				Zone:         "America/New_York",
				Time:         "07:00:00 AM",
				Date:         "Mon, Jan 15, 2024",
				Abbreviation: "EST",
				Civil:        model.NewCivilDateTime(2024, time.January, 15, 7, 0, 0),
				Offset:       -5 * time.Hour,
			},
		},
		Skipped: []model.SkippedZone{{Zone: "Mars/Olympus_Mons", Reason: "unknown time zone"}},
	}

	var response dto.ConversionResponse
	response.FromModel(conversion)

	assert.Equal(t, "UTC", response.Source.Zone)
	assert.Equal(t, "2024-01-15", response.Source.Date)
	assert.Equal(t, "12:00:00", response.Source.Time)
	assert.Equal(t, "2024-01-15T12:00:00Z", response.UTC)
	require.Len(t, response.Times, 1)
	assert.Equal(t, dto.ConvertedTimeResponse{
		Zone:         "America/New_York",
		DisplayName:  "America/New York",
		Time:         "07:00:00 AM",
		Date:         "Mon, Jan 15, 2024",
		Abbreviation: "EST",
		Offset:       "-05:00",
		Civil:        "2024-01-15 07:00:00",
	}, response.Times[0])
	assert.Equal(t, []dto.SkippedZoneResponse{{Zone: "Mars/Olympus_Mons", Reason: "unknown time zone"}}, response.Skipped)
	assert.Empty(t, response.Message)
}

func TestConversionResponse_FromEmptyModel(t *testing.T) {
	var response dto.ConversionResponse
	response.FromModel(model.Conversion{Times: []model.ConvertedTime{}})

	assert.Empty(t, response.Times)
	assert.Empty(t, response.UTC)
	assert.Equal(t, constant.ResponseMessageNoTargets, response.Message)
}

func TestGetZonesResponse_FromModels(t *testing.T) {
	models := []model.ConvertedTime{
		{Zone: "Asia/Kathmandu", Abbreviation: "+0545", Offset: 5*time.Hour + 45*time.Minute, Time: "05:45:00 PM"},
		{Zone: "America/St_Johns", Abbreviation: "NST", Offset: -3*time.Hour - 30*time.Minute},
	}

	var response dto.GetZonesResponse
	response.FromModels(models)

	assert.Equal(t, 2, response.TotalData)
	assert.Equal(t, "+05:45", response.Zones[0].Offset)
	assert.Equal(t, "05:45:00 PM", response.Zones[0].Time)
	assert.Equal(t, "America/St Johns", response.Zones[1].DisplayName)
	assert.Equal(t, "-03:30", response.Zones[1].Offset)
}

func TestZoneIDs(t *testing.T) {
	names := []string{"UTC", "Europe/Paris"}

	assert.Equal(t, names, dto.FromZoneIDs(dto.ToZoneIDs(names)))
	assert.Empty(t, dto.ToZoneIDs(nil))
}
