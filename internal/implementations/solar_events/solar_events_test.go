package solarevents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openhours/internal/core/domain/hours"
)

var (
	edt        = time.FixedZone("EDT", -4*60*60)
	pittsburgh = hours.Location{Latitude: 40.44, Longitude: -80.0, TimeZone: edt}
)

func TestResolve(t *testing.T) {
	date := time.Date(2022, time.June, 6, 12, 0, 0, 0, edt)

	cases := []struct {
		event hours.Event
		want  time.Time
	}{
		{event: hours.Dawn, want: time.Date(2022, time.June, 6, 5, 17, 0, 0, edt)},
		{event: hours.Sunrise, want: time.Date(2022, time.June, 6, 5, 50, 0, 0, edt)},
		{event: hours.Sunset, want: time.Date(2022, time.June, 6, 20, 47, 0, 0, edt)},
		{event: hours.Dusk, want: time.Date(2022, time.June, 6, 21, 20, 0, 0, edt)},
	}

	resolver := New()
	for _, testcase := range cases {
		t.Run(testcase.event.String(), func(t *testing.T) {
			got, err := resolver.Resolve(testcase.event, date, pittsburgh)
			require.NoError(t, err)
			assert.WithinDuration(t, testcase.want, got, 5*time.Minute)
			assert.Equal(t, edt, got.Location())
		})
	}
}

func TestResolveUsesLocalDate(t *testing.T) {
	// 02:00 UTC on June 7 is still June 6 in Pittsburgh.
	date := time.Date(2022, time.June, 7, 2, 0, 0, 0, time.UTC)

	got, err := New().Resolve(hours.Sunrise, date, pittsburgh)

	require.NoError(t, err)
	assert.Equal(t, 6, got.Day())
}

func TestResolveUsesDateZoneWithoutTimeZone(t *testing.T) {
	date := time.Date(2022, time.June, 6, 12, 0, 0, 0, edt)

	got, err := New().Resolve(hours.Sunset, date, hours.Location{Latitude: 40.44, Longitude: -80.0})

	require.NoError(t, err)
	assert.Equal(t, edt, got.Location())
}

func TestResolveMidnightSun(t *testing.T) {
	tromso := hours.Location{Latitude: 69.65, Longitude: 18.96, TimeZone: time.UTC}
	date := time.Date(2022, time.June, 21, 12, 0, 0, 0, time.UTC)

	_, err := New().Resolve(hours.Sunset, date, tromso)

	assert.ErrorIs(t, err, hours.ErrNoSolarEvent)
}
