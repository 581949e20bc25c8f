package server_test

import (
	"testing"

	"object-gateway/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Configured", 8, 8 * 1024 * 1024},
		{"Zero", 0, server.DefaultBodyLimitMB * 1024 * 1024},
		{"Negative", -1, server.DefaultBodyLimitMB * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.limit}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestConfig_PresignExpiry(t *testing.T) {
	assert.Equal(t, 60, server.Config{PresignExpirySeconds: 60}.PresignExpiry())
	assert.Equal(t, server.DefaultPresignExpirySeconds, server.Config{}.PresignExpiry())
}
