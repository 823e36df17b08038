//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 25, ConvertToInt("25"))
	assert.Equal(t, 0, ConvertToInt("abc"))
	assert.Equal(t, int64(1024), ConvertToInt64("1024"))
	assert.Equal(t, int64(0), ConvertToInt64(""))
}

func TestConvertToBool(t *testing.T) {
	v := ConvertToBool("true")
	if assert.NotNil(t, v) {
		assert.True(t, *v)
	}
	assert.Nil(t, ConvertToBool(""))
}
