//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap renders a request DTO as its JSON object so tests can corrupt
// individual fields before sending it.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err, "marshal request dto")

	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m), "request dto is not a JSON object")

	for _, f := range muts {
		f(m)
	}
	return m
}
