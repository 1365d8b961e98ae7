package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain path", path: "/api/chats/c1", want: "/api/chats/c1"},
		{name: "verify token", path: "/api/auth/verify/abc.def", want: "/api/auth/verify/***"},
		{name: "verify without token", path: "/api/auth/verify/", want: "/api/auth/verify/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizePath(tt.path))
		})
	}
}
