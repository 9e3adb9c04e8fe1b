package app

import "testing"

func TestOriginAllowed(t *testing.T) {
	patterns := []string{"pixico.example.com", "*.pixico.example.com", "https://studio.example.net", ""}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{name: "bare host entry", origin: "https://pixico.example.com", want: true},
		{name: "bare host with port", origin: "https://pixico.example.com:443", want: false},
		{name: "subdomain wildcard", origin: "https://admin.pixico.example.com", want: true},
		{name: "deep subdomain wildcard", origin: "https://a.b.pixico.example.com", want: true},
		{name: "full origin entry", origin: "https://studio.example.net", want: true},
		{name: "unrelated host", origin: "https://evil.example.org", want: false},
		{name: "suffix lookalike", origin: "https://notpixico.example.com", want: false},
		{name: "empty origin", origin: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := originAllowed(patterns, tt.origin); got != tt.want {
				t.Errorf("originAllowed(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}
