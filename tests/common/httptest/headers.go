//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const replayedHeader = "Idempotent-Replayed"

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}

// AssertReplayed checks whether a booking answer was served from the idempotency record.
func AssertReplayed(t *testing.T, w *httptest.ResponseRecorder, replayed bool) {
	t.Helper()
	if replayed {
		assert.Equal(t, "true", w.Header().Get(replayedHeader), "replayed booking must be flagged")
		return
	}
	assert.Empty(t, w.Header().Get(replayedHeader), "fresh booking must not be flagged")
}
