package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easybooking/shared/constant"
	"easybooking/shared/timezone"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "utc", zone: "UTC", want: "UTC"},
		{name: "empty falls back", zone: "", want: "UTC"},
		{name: "unknown falls back", zone: "Mars/Olympus_Mons", want: "UTC"},
		{name: "abbreviation is not an iana name", zone: "WIB", want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.Load(tt.zone).String())
		})
	}
}

func TestParse_KeepsOffsetInstant(t *testing.T) {
	got, err := timezone.Parse(constant.DateFormat, "2030-01-01T10:00:00+07:00")
	require.NoError(t, err)

	assert.True(t, got.Equal(time.Date(2030, 1, 1, 3, 0, 0, 0, time.UTC)))

	_, err = timezone.Parse(constant.DateFormat, "2030-01-01 10:00")
	assert.Error(t, err)
}

func TestFormat_RoundTrips(t *testing.T) {
	start := time.Date(2030, 1, 1, 10, 30, 0, 0, time.FixedZone("east", 7*3600))

	formatted := timezone.Format(start, constant.DateFormat)

	parsed, err := timezone.Parse(constant.DateFormat, formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(start))
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}
