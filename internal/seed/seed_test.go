package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacilitiesCountAndValidity(t *testing.T) {
	fs := Facilities()
	require.Len(t, fs, 17)
	for _, f := range fs {
		assert.NoError(t, f.Validate(), "seed facility %s should validate", f.ID)
	}
}

func TestFacilitiesReturnsIndependentCopies(t *testing.T) {
	a := Facilities()
	a[0].Name = "mutated"
	b := Facilities()
	assert.NotEqual(t, "mutated", b[0].Name)
}

func TestFacilitiesIncludesUnknownSectorCase(t *testing.T) {
	fs := Facilities()
	canonical := map[string]bool{
		"steel": true, "cement": true, "chemicals": true, "power_generation": true,
		"oil_gas": true, "aviation": true, "shipping": true, "automotive": true,
		"mining": true, "agriculture": true,
	}
	var sawUnknown bool
	for _, f := range fs {
		if !canonical[f.Sector] {
			sawUnknown = true
		}
	}
	assert.True(t, sawUnknown, "seed set should include at least one unrecognised sector tag")
}
