package reinforce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nic0Byte/wall-build-1-sub002/reinforce"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  reinforce.Config
		ok   bool
	}{
		{"valid", reinforce.Config{Thickness: 58, Spacing: 420, CountL: 3, CountM: 2, CountS: 1}, true},
		{"zero thickness", reinforce.Config{Thickness: 0, Spacing: 420}, false},
		{"negative thickness", reinforce.Config{Thickness: -1, Spacing: 420}, false},
		{"zero spacing", reinforce.Config{Thickness: 58, Spacing: 0}, false},
		{"negative count", reinforce.Config{Thickness: 58, Spacing: 420, CountL: -1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, reinforce.ErrInvalidConfig)
			}
		})
	}
}
