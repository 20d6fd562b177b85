package middleware

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCORSConfig(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)

	tests := []struct {
		name        string
		origins     string
		credentials string
		want        CORSConfig
		wantErr     bool
	}{
		{
			name: "unset environment",
			want: CORSConfig{},
		},
		{
			name:    "specific origins",
			origins: "https://a.example, https://b.example",
			want: CORSConfig{
				AllowedOrigins: []string{"https://a.example", "https://b.example"},
			},
		},
		{
			name:    "wildcard",
			origins: "*",
			want:    CORSConfig{AllowAll: true},
		},
		{
			name:        "credentials with specific origin",
			origins:     "https://a.example",
			credentials: "true",
			want: CORSConfig{
				AllowedOrigins:   []string{"https://a.example"},
				AllowCredentials: true,
			},
		},
		{
			name:        "wildcard with credentials rejected",
			origins:     "*",
			credentials: "true",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvCORSAllowedOrigins, tt.origins)
			t.Setenv(EnvCORSAllowCredentials, tt.credentials)

			got, err := ParseCORSConfig(logger)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
