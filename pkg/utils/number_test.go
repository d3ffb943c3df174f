package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 29.86, RoundWithTwoDecimalPlace(29.855))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -1.23, RoundWithTwoDecimalPlace(-1.234))
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 32.4, RoundWithOneDecimalPlace(32.44))
	assert.Equal(t, 32.5, RoundWithOneDecimalPlace(32.45))
	assert.Equal(t, 0.0, RoundWithOneDecimalPlace(0))
}

func TestRoundWithFourDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.2654, RoundWithFourDecimalPlace(0.26537))
	assert.Equal(t, 0.3333, RoundWithFourDecimalPlace(1.0/3.0))
	assert.Equal(t, 0.0, RoundWithFourDecimalPlace(0))
}

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 2.0, SafeDiv(10, 5))
	assert.Equal(t, 0.0, SafeDiv(10, 0), "divisão por zero retorna zero em vez de Inf")
	assert.Equal(t, 0.0, SafeDiv(0, 0))
}
