package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"attom": map[string]any{
			"apiKey":  "",
			"baseUrl": "",
		},
		"noaa": map[string]any{
			"userAgent": "",
		},
		"alertPoller": map[string]any{
			"interval": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ATTOM_APIKEY", want: "attom.apiKey"},
		{envKey: "ATTOM_BASEURL", want: "attom.baseUrl"},
		{envKey: "NOAA_USERAGENT", want: "noaa.userAgent"},
		{envKey: "ALERTPOLLER_INTERVAL", want: "alertPoller.interval"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
