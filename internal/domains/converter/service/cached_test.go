package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	"zonecast/config"
	"zonecast/internal/domains/converter/model"
	"zonecast/internal/domains/converter/service"
	"zonecast/shared/cache"
	cacheMocks "zonecast/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedConverter_Convert(t *testing.T) {
	selection := model.SourceSelection{Civil: civil(2024, time.January, 15, 12, 0), Zone: "UTC"}
	targets := []model.ZoneID{"America/New_York", "Asia/Tokyo"}
	key := "conversion:civil:true:UTC:2024-01-15 12:00:00:America/New_York,Asia/Tokyo"

	tests := []struct {
		name      string
		setupMock func(mockCache *cacheMocks.MockRedisCache)
		source    model.ZoneID
		wantErr   bool
		wantTimes int
	}{
		{
			name: "cache miss computes and saves",
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), key, gomock.Any()).
					Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))

				mockCache.EXPECT().
					Save(gomock.Any(), key, gomock.Any(), 300).
					Return(nil)
			},
			wantTimes: 2,
		},
		{
			name: "cache hit skips the engine",
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), key, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						conversion, ok := value.(*model.Conversion)
						require.True(t, ok)

						conversion.Source = selection
						conversion.Times = []model.ConvertedTime{{Zone: "America/New_York", Time: "cached"}}

						return nil
					})
			},
			wantTimes: 1,
		},
		{
			name: "broken cache still converts",
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), key, gomock.Any()).
					Return(errors.New("connection refused"))

				mockCache.EXPECT().
					Save(gomock.Any(), key, gomock.Any(), 300).
					Return(errors.New("connection refused"))
			},
			wantTimes: 2,
		},
		{
			name:   "failed pass is not cached",
			source: "Mars/Olympus_Mons",
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockCache)

			inner, _ := newConverter(config.BasisCivil)

			cfg := &config.Config{}
			cfg.Defaults()

			svc := service.NewCached(inner, mockCache, cfg)

			sel := selection
			if tt.source != "" {
				sel.Zone = tt.source
			}

			res, err := svc.Convert(context.Background(), sel, targets)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Len(t, res.Times, tt.wantTimes)
		})
	}
}

func TestCachedConverter_PassesThroughClocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner, _ := newConverter(config.BasisCivil)

	cfg := &config.Config{}
	cfg.Defaults()

	svc := service.NewCached(inner, cacheMocks.NewMockRedisCache(ctrl), cfg)

	times := svc.CurrentTimes(context.Background(), time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC), []model.ZoneID{"Europe/London"})

	require.Len(t, times, 1)
	assert.Equal(t, "BST", times[0].Abbreviation)
	assert.Equal(t, inner.Catalog(), svc.Catalog())
}
