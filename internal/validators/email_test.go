package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Only the syntactic rejections are covered here; positive cases need a
// live resolver and belong to integration runs.
func TestIsEmailDomainValidRejectsMalformedAddresses(t *testing.T) {
	for _, email := range []string{
		"",
		"no-at-sign",
		"@missing-local.com",
		"trailing@",
		"bare-host@localhost",
		"dot-only@.",
		"spaces@ .",
	} {
		assert.False(t, IsEmailDomainValid(email), email)
	}
}
