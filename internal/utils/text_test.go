package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "lon...", Truncate("long enough", 3))
	assert.Equal(t, "", Truncate("", 5))
}

func TestCleanCodeBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanCodeBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanCodeBlock("```JSON\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanCodeBlock("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanCodeBlock(`{"a":1}`))
	assert.Equal(t, "plain text", CleanCodeBlock("  plain text  "))
}
