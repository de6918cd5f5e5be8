package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.4, Round1(4.35))
	assert.Equal(t, -4.4, Round1(-4.35))
	assert.Equal(t, 6.0, Round1(6.0))
	assert.Equal(t, 2.7, Round1(2.666))
	assert.Equal(t, 0.0, Round1(0))
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 50, PercentOf(1, 2))
	assert.Equal(t, 33, PercentOf(1, 3))
	assert.Equal(t, 67, PercentOf(2, 3))
	assert.Equal(t, 100, PercentOf(5, 5))
	assert.Equal(t, 0, PercentOf(0, 10))
	assert.Equal(t, 0, PercentOf(3, 0), "при нулевом знаменателе процент равен нулю")
	assert.Equal(t, 0, PercentOf(3, -1))
}
