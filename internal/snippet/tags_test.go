package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTags(t *testing.T) {
	tests := []struct {
		name   string
		source any
		want   []string
	}{
		{"comma-delimited string", "a, b ,c", []string{"a", "b", "c"}},
		{"single tag", "solo", []string{"solo"}},
		{"empty string", "", []string{}},
		{"empties dropped", "a,,  ,b", []string{"a", "b"}},
		{"string slice trimmed", []string{" x ", "y"}, []string{"x", "y"}},
		{"decoded JSON array", []any{"a", "b"}, []string{"a", "b"}},
		{"non-string JSON elements stringified", []any{"a", 42}, []string{"a", "42"}},
		{"nil", nil, []string{}},
		{"unsupported type", 12, []string{}},
		{"order preserved", "z, a, m", []string{"z", "a", "m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildTags(tt.source))
		})
	}
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "a, b, c", JoinTags([]string{"a", "b", "c"}))
	assert.Equal(t, "", JoinTags(nil))
}
