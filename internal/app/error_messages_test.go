package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages_Distinct(t *testing.T) {
	msgs := []string{
		MsgInvalidDataProvided,
		MsgConfigDocumentUnavailable,
		MsgUpstreamUnavailable,
		MsgInternalServerError,
	}

	seen := make(map[string]struct{}, len(msgs))
	for _, m := range msgs {
		assert.NotEmpty(t, m)
		_, dup := seen[m]
		assert.False(t, dup, "duplicate message %q", m)
		seen[m] = struct{}{}
	}
}
