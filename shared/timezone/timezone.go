package timezone

import (
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation = time.UTC
)

// Init sets the application timezone. An empty or unknown name keeps UTC.
func Init(name string) {
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
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(appLocation)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return t.In(appLocation).Format(layout)
}
