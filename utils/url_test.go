package utils

import (
	"testing"

	"github.com/anoixa/photo-album/config"
)

func TestBuildPhotoURL(t *testing.T) {
	cfg := config.Get()
	originalDomain := cfg.ServerDomain
	defer func() { cfg.ServerDomain = originalDomain }()

	tests := []struct {
		name     string
		domain   string
		id       string
		expected string
	}{
		{
			name:     "custom domain",
			domain:   "https://photos.example.com",
			id:       "abc-123",
			expected: "https://photos.example.com/photo/abc-123",
		},
		{
			name:     "domain with port",
			domain:   "http://localhost:9000",
			id:       "xyz",
			expected: "http://localhost:9000/photo/xyz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg.ServerDomain = tt.domain
			result := BuildPhotoURL(tt.id)
			if result != tt.expected {
				t.Errorf("BuildPhotoURL(%q) = %q, want %q", tt.id, result, tt.expected)
			}
		})
	}
}

func TestBuildDetailURL(t *testing.T) {
	cfg := config.Get()
	originalDomain := cfg.ServerDomain
	defer func() { cfg.ServerDomain = originalDomain }()

	cfg.ServerDomain = "https://photos.example.com"
	result := BuildDetailURL("abc-123")
	expected := "https://photos.example.com/detail/abc-123"
	if result != expected {
		t.Errorf("BuildDetailURL(%q) = %q, want %q", "abc-123", result, expected)
	}
}
