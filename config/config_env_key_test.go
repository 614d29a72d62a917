package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"backend":     "relational",
			"dialTimeout": "5s",
		},
		"relational": map[string]any{
			"descriptorPath": "config/relational.yaml",
		},
		"auth": map[string]any{
			"bcryptCost": 12,
		},
		"passwordStrength": map[string]any{
			"minScore": 0,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_BACKEND", want: "store.backend"},
		{envKey: "STORE_DIALTIMEOUT", want: "store.dialTimeout"},
		{envKey: "RELATIONAL_DESCRIPTORPATH", want: "relational.descriptorPath"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "PASSWORDSTRENGTH_MINSCORE", want: "passwordStrength.minScore"},
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
