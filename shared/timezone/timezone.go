// Package timezone holds the location reservation windows are parsed and rendered in.
// It is read from APP_TIMEZONE when the package loads. Only IANA names are accepted,
// anything else falls back to UTC.
package timezone

import (
	"easybooking/config"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation = time.UTC

func init() {
	appLocation = Load(config.Get().App.Timezone)
}

// Load resolves an IANA zone name, UTC when name is empty or unknown.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, using UTC")

		return time.UTC
	}

	log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

func Now() time.Time {
	return time.Now().In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse reads value in the application location. Values that carry their own offset,
// like RFC3339 timestamps, keep their instant.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation)
}

// Format renders t in the application location.
func Format(t time.Time, layout string) string {
	return t.In(appLocation).Format(layout)
}
