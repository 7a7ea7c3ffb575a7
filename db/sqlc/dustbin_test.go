package db

import (
	"context"
	"testing"

	"github.com/cleancycle/cleancycle/util"
	"github.com/stretchr/testify/require"
)

func createRandomDustbin(t *testing.T, area string, lng, lat float64, fillLevel int32) Dustbin {
	arg := CreateDustbinParams{
		Label:          "bin-" + util.RandomString(8),
		Area:           area,
		Longitude:      lng,
		Latitude:       lat,
		CapacityLiters: 240,
		FillLevel:      fillLevel,
	}

	dustbin, err := testStore.CreateDustbin(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, dustbin)

	require.Equal(t, arg.Label, dustbin.Label)
	require.Equal(t, arg.Area, dustbin.Area)
	require.Equal(t, arg.FillLevel, dustbin.FillLevel)
	require.False(t, dustbin.LastEmptiedAt.Valid)
	require.NotZero(t, dustbin.ID)

	return dustbin
}

func TestCreateDustbin(t *testing.T) {
	createRandomDustbin(t, "downtown", util.RandomLongitude(), util.RandomLatitude(), 10)
}

func TestListNearbyDustbins(t *testing.T) {
	area := "area-" + util.RandomString(8)

	// two bins near the probe point, one far away
	near1 := createRandomDustbin(t, area, 10.000, 50.000, 30)
	near2 := createRandomDustbin(t, area, 10.001, 50.001, 80)
	far := createRandomDustbin(t, area, 11.000, 51.000, 95)

	rows, err := testStore.ListNearbyDustbins(context.Background(), ListNearbyDustbinsParams{
		Longitude:    10.0005,
		Latitude:     50.0005,
		RadiusMeters: 500,
		RowLimit:     10,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// fuller bins first
	require.Equal(t, near2.ID, rows[0].ID)
	require.Equal(t, near1.ID, rows[1].ID)
	for _, row := range rows {
		require.NotEqual(t, far.ID, row.ID)
		require.LessOrEqual(t, row.DistanceMeters, 500.0)
	}
}

func TestListOverfilledDustbins(t *testing.T) {
	area := "area-" + util.RandomString(8)
	full := createRandomDustbin(t, area, util.RandomLongitude(), util.RandomLatitude(), 97)
	createRandomDustbin(t, area, util.RandomLongitude(), util.RandomLatitude(), 20)

	bins, err := testStore.ListOverfilledDustbins(context.Background(), 90)
	require.NoError(t, err)
	require.NotEmpty(t, bins)

	found := false
	for _, bin := range bins {
		require.GreaterOrEqual(t, bin.FillLevel, int32(90))
		if bin.ID == full.ID {
			found = true
		}
	}
	require.True(t, found)
}

func TestUpdateDustbinFillLevel(t *testing.T) {
	bin := createRandomDustbin(t, "uptown", util.RandomLongitude(), util.RandomLatitude(), 60)

	updated, err := testStore.UpdateDustbinFillLevel(context.Background(), UpdateDustbinFillLevelParams{
		ID:        bin.ID,
		FillLevel: 85,
	})
	require.NoError(t, err)
	require.Equal(t, int32(85), updated.FillLevel)
	require.False(t, updated.LastEmptiedAt.Valid)

	// emptying the bin stamps last_emptied_at
	emptied, err := testStore.UpdateDustbinFillLevel(context.Background(), UpdateDustbinFillLevelParams{
		ID:        bin.ID,
		FillLevel: 0,
	})
	require.NoError(t, err)
	require.Equal(t, int32(0), emptied.FillLevel)
	require.True(t, emptied.LastEmptiedAt.Valid)
}
