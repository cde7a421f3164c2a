package config

// defaults returns the flat koanf key/value defaults.
//
// Everything here can be overridden through PEOPLE_* env vars.
func defaults() map[string]any {
	obs := DefaultObservabilityConfig()

	return map[string]any{
		"primary.env": "development",

		"server.port":                 "8000",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"*"},
		"server.max_upload_bytes":     int64(10 << 20),
		"server.rate_limit":           0.0,

		"redis.address":     "",
		"redis.persons_key": "people:persons",

		"observability.logging.level":                         obs.Logging.Level,
		"observability.logging.format":                        obs.Logging.Format,
		"observability.new_relic.license_key":                 obs.NewRelic.LicenseKey,
		"observability.new_relic.app_log_forwarding_enabled":  obs.NewRelic.AppLogForwardingEnabled,
		"observability.new_relic.distributed_tracing_enabled": obs.NewRelic.DistributedTracingEnabled,
		"observability.new_relic.debug_logging":               obs.NewRelic.DebugLogging,
		"observability.health_checks.enabled":                 obs.HealthChecks.Enabled,
		"observability.health_checks.timeout":                 obs.HealthChecks.Timeout.String(),
		"observability.health_checks.checks":                  obs.HealthChecks.Checks,
	}
}
