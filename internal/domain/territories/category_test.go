//go:build unit
// +build unit

package territories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCategory(t *testing.T) {
	c := NewCategory(&Input{Name: " Bengaluru Central ", Pincodes: []string{"560001", " 560002", "560001", ""}})

	assert.Equal(t, "Bengaluru Central", c.Name)
	assert.Equal(t, []string{"560001", "560002"}, c.Pincodes)
	assert.True(t, c.Covers("560002"))
	assert.False(t, c.Covers("411001"))
	assert.NoError(t, c.Validate())
}

func TestCategory_Validate_BadPincode(t *testing.T) {
	c := NewCategory(&Input{Name: "North", Pincodes: []string{"12AB"}})
	assert.Error(t, c.Validate())
}
