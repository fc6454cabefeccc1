package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"dataDir":  "data",
			"fileName": "home_food_data.json",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"rateLimit": map[string]any{
			"login": "10-M",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_DATADIR", want: "store.dataDir"},
		{envKey: "STORE_FILENAME", want: "store.fileName"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "RATELIMIT_LOGIN", want: "rateLimit.login"},
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
