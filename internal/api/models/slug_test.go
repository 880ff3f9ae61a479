package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("movies"))
	assert.True(t, ValidSlug("sci-fi_2"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("bad slug"))
	assert.False(t, ValidSlug("кино"))
	assert.False(t, ValidSlug(strings.Repeat("a", 51)))
	assert.True(t, ValidSlug(strings.Repeat("a", 50)))
}
