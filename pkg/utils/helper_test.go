package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 20, ParseInt("0", 20))
	assert.Equal(t, 20, ParseInt("-3", 20))
}

func TestParseFloat(t *testing.T) {
	assert.Nil(t, ParseFloat(""))
	assert.Nil(t, ParseFloat("not-a-number"))

	v := ParseFloat("52.52")
	if assert.NotNil(t, v) {
		assert.InDelta(t, 52.52, *v, 1e-9)
	}

	neg := ParseFloat("-13.4")
	if assert.NotNil(t, neg) {
		assert.InDelta(t, -13.4, *neg, 1e-9)
	}
}

func TestNormalizeCountryCode(t *testing.T) {
	assert.Equal(t, "de", NormalizeCountryCode("DE"))
	assert.Equal(t, "fr", NormalizeCountryCode(" fr "))
	assert.Equal(t, "", NormalizeCountryCode(""))
}
