package timezone

import (
	"time"

	"github.com/rs/zerolog/log"

	"frs/config"
)

var (
	appLocation *time.Location
)

func init() {
	Load(config.Get().App.Timezone)
}

// Load sets the application location, falling back to UTC.
func Load(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		appLocation = time.UTC

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().Str("timezone", name).Msg("Application timezone initialized")
}

func Now() time.Time {
	if appLocation == nil {
		return time.Now().UTC()
	}

	return time.Now().In(appLocation)
}

func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}
