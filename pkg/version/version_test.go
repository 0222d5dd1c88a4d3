package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{name: "python version line", output: "Python 3.12.4\n", want: "3.12.4"},
		{name: "bare version", output: "3.12", want: "3.12"},
		{name: "tool banner", output: "uv 0.8.3 (7ba1c4f82 2025-07-29)", want: "0.8.3"},
		{name: "pre-release suffix", output: "Python 3.13.0rc1", want: "3.13.0rc1"},
		{name: "no version at all", output: "command not found", wantErr: true},
		{name: "single component is not a version", output: "error 42", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.output)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesPrefix(t *testing.T) {
	tests := []struct {
		actual string
		want   string
		match  bool
	}{
		{"3.12", "3.12", true},
		{"3.12.4", "3.12", true},
		{"3.12rc1", "3.12", true},
		{"  3.12.4\n", "3.12", true},
		{"3.11.9", "3.12", false},
		// "3.1" must not claim "3.12" as a match
		{"3.12", "3.1", false},
		{"3.1.9", "3.1", true},
		{"2.12.4", "3.12", false},
		{"", "3.12", false},
	}

	for _, tt := range tests {
		t.Run(tt.actual+"_vs_"+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.match, MatchesPrefix(tt.actual, tt.want))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Python 3.12.4", "3.12"))
	assert.True(t, Contains("Python 3.12.4", "3.12.4"))
	assert.False(t, Contains("Python 3.11.9", "3.12"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("3.12"))
	assert.NoError(t, Validate("3.12.4"))
	assert.NoError(t, Validate("3"))

	assert.Error(t, Validate(""))
	assert.Error(t, Validate("not-a-version"))
	assert.Error(t, Validate("latest"))
}

func TestMajorMinor(t *testing.T) {
	assert.Equal(t, "3.12", MajorMinor("3.12.4"))
	assert.Equal(t, "3.12", MajorMinor("3.12"))
	assert.Equal(t, "3", MajorMinor("3"))
	assert.Equal(t, "3.12", MajorMinor(" 3.12.4\n"))
}
