package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brief/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		ciValue  string
		isTTY    bool
		expected detector.OutputMode
	}{
		{name: "terminal", isTTY: true, expected: detector.ModeText},
		{name: "pipe", isTTY: false, expected: detector.ModeJSON},
		{name: "CI=true pipe", ciValue: "true", expected: detector.ModeText},
		{name: "CI=1 pipe", ciValue: "1", expected: detector.ModeText},
		{name: "CI=false pipe", ciValue: "false", expected: detector.ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)
			assert.Equal(t, tt.expected, detector.Detect(tt.isTTY))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeText, detector.DetectEnvironment())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		flag     string
		expected detector.OutputMode
	}{
		{flag: "", expected: detector.ModeAuto},
		{flag: "auto", expected: detector.ModeAuto},
		{flag: "text", expected: detector.ModeText},
		{flag: "json", expected: detector.ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := detector.ParseMode(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			if tt.flag != "" {
				assert.Equal(t, tt.flag, got.String())
			}
		})
	}

	_, err := detector.ParseMode("yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown output format")
}

func TestResolveMode(t *testing.T) {
	assert.Equal(t, detector.ModeJSON, detector.ResolveMode(detector.ModeJSON, detector.ModeAuto))
	assert.Equal(t, detector.ModeText, detector.ResolveMode(detector.ModeJSON, detector.ModeText))
	assert.Equal(t, detector.ModeJSON, detector.ResolveMode(detector.ModeText, detector.ModeJSON))
}
