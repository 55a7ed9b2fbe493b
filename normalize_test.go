package uktag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumber(t *testing.T) {
	for _, w := range []string{"0", "1,5", "-12", "+3", "€5", "5%", "1-3", "12—14", "XXXIX", "XL"} {
		assert.True(t, IsNumber(w), w)
	}
	for _, w := range []string{"", "1.5", "1,", "abc", "IIII", "C", "5 %"} {
		assert.False(t, IsNumber(w), w)
	}
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("01.02.2003"))
	assert.False(t, IsDate("1.02.2003"))
	assert.False(t, IsDate("01.02.03"))
	assert.False(t, IsDate(""))
}

func TestLower(t *testing.T) {
	assert.Equal(t, "європа", Lower("Європа"))
	assert.Equal(t, "їжак", Lower("ЇЖАК"))
}

func TestStartsUpper(t *testing.T) {
	assert.True(t, startsUpper("Київ"))
	assert.False(t, startsUpper("київ"))
	assert.False(t, startsUpper(""))
	assert.False(t, startsUpper("1Київ"))
}

func TestRuneAfter(t *testing.T) {
	r, ok := runeAfter("пів-Європи", "пів-")
	assert.True(t, ok)
	assert.Equal(t, 'Є', r)

	_, ok = runeAfter("пів-", "пів-")
	assert.False(t, ok)
	_, ok = runeAfter("півень", "пів-")
	assert.False(t, ok)
}
