package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces stripped", "New Company", "newcompany"},
		{"punctuation stripped", "Big Co.", "bigco"},
		{"already a slug", "appleinc", "appleinc"},
		{"digits kept", "Area 51 Ltd", "area51ltd"},
		{"nothing usable", "!!! ---", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestFormatEpoch(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00Z", FormatEpoch(0))
	assert.Equal(t, "2024-03-21T05:00:00Z", FormatEpoch(1710997200000))
}

func TestSanitize(t *testing.T) {
	type payload struct {
		Name string
		Tags []string
	}

	p := &payload{Name: "  Apple Inc ", Tags: []string{" a ", "b"}}
	Sanitize(p)

	assert.Equal(t, "Apple Inc", p.Name)
	assert.Equal(t, []string{"a", "b"}, p.Tags)
}
