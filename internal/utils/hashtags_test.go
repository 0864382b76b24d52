package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHashtags(t *testing.T) {
	assert.Nil(t, ExtractHashtags("no tags here"))
	assert.Equal(t, []string{"golang"}, ExtractHashtags("just #golang"))
	assert.Equal(t, []string{"go", "go", "web"}, ExtractHashtags("#Go #go and #Web"))
	assert.Equal(t, []string{"tag_1"}, ExtractHashtags("mixed #tag_1 chars"))
	assert.Equal(t, []string{"end"}, ExtractHashtags("trailing #end"))
}
