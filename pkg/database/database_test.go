package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "photobooker.db?_pragma=foreign_keys(1)", withForeignKeys("photobooker.db"))
	assert.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)", withForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "file:x?_pragma=foreign_keys(1)", withForeignKeys("file:x?_pragma=foreign_keys(1)"))
}
