package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/os-dave/voiceplan/internal/due"
)

// LoadResolver builds the due date resolver from configuration.
// resolver.defaultTime is an HH:MM clock time applied when the user never
// said one; resolver.timezone names an IANA zone (default local).
func LoadResolver() (*due.Resolver, error) {
	r := due.NewResolver()

	if v := viper.GetString("resolver.defaultTime"); v != "" {
		tod, err := due.ParseTimeOfDay(v)
		if err != nil {
			return nil, fmt.Errorf("resolver.defaultTime: %w", err)
		}
		r.Default = tod
	}

	if name := viper.GetString("resolver.timezone"); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("resolver.timezone: %w", err)
		}
		r.Location = loc
	}

	return r, nil
}
