package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSV(t *testing.T) {
	assert.Nil(t, parseCSV(""))
	assert.Equal(t, []string{"a@x.com"}, parseCSV("a@x.com"))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, parseCSV(" a@x.com , b@x.com "))
	assert.Equal(t, []string{"a@x.com"}, parseCSV("a@x.com,,  ,"))
}

func TestContains(t *testing.T) {
	list := []string{"a@x.com", "b@x.com"}
	assert.True(t, contains(list, "a@x.com"))
	assert.False(t, contains(list, "A@x.com"), "matching is exact")
	assert.False(t, contains(nil, "a@x.com"))
}
