package middleware

import "testing"

func TestShouldSkipCachePath(t *testing.T) {
	patterns := []string{
		"/api/v2/support/chat",
		"/api/v2/admin*",
		"/api/v2/auth*",
		"",
		"  ",
	}

	tests := []struct {
		name string
		path string
		skip bool
	}{
		{name: "exact match", path: "/api/v2/support/chat", skip: true},
		{name: "star matches prefix root", path: "/api/v2/admin", skip: true},
		{name: "star matches nested path", path: "/api/v2/admin/contacts", skip: true},
		{name: "star matches other subtree", path: "/api/v2/auth/login", skip: true},
		{name: "public path cached", path: "/api/v2/prompts", skip: false},
		{name: "exact pattern is not a prefix", path: "/api/v2/support/chat/extra", skip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldSkipCachePath(tt.path, patterns); got != tt.skip {
				t.Errorf("shouldSkipCachePath(%q) = %v, want %v", tt.path, got, tt.skip)
			}
		})
	}
}
