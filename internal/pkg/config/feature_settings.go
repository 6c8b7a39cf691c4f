package config

// FeatureSettings keeps the raw values of the environment switches.
// SKIP_* switches are on only for "1"; the other flags are on unless "false".
type FeatureSettings struct {
	SkipDB              string `mapstructure:"skip_db" yaml:"skip_db"`
	SkipAuth            string `mapstructure:"skip_auth" yaml:"skip_auth"`
	StatusNotifications string `mapstructure:"enable_status_notifications" yaml:"enable_status_notifications"`
	TrafficLightStatus  string `mapstructure:"enable_traffic_light_status" yaml:"enable_traffic_light_status"`
}

// SkipDBEnabled reports whether repositories are served from the in-memory store.
func (f FeatureSettings) SkipDBEnabled() bool {
	return f.SkipDB == "1"
}

// SkipAuthEnabled reports whether unauthenticated requests fall back to a dev actor.
func (f FeatureSettings) SkipAuthEnabled() bool {
	return f.SkipAuth == "1"
}

func (f FeatureSettings) StatusNotificationsEnabled() bool {
	return f.StatusNotifications != "false"
}

func (f FeatureSettings) TrafficLightEnabled() bool {
	return f.TrafficLightStatus != "false"
}
