package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	name := SanitizeFilename("quality manual (final).pdf")
	assert.True(t, strings.HasPrefix(name, "quality_manual_final_"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "(")

	// path components are stripped
	name = SanitizeFilename("../../etc/passwd")
	assert.False(t, strings.Contains(name, "/"))
	assert.True(t, strings.HasPrefix(name, "passwd_"))

	// everything filtered out still yields a usable name
	name = SanitizeFilename("???")
	assert.True(t, strings.HasPrefix(name, "file_"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("owner@lab.example.com"))
	assert.False(t, IsValidEmail("owner@lab"))
	assert.False(t, IsValidEmail("not-an-email"))
}
