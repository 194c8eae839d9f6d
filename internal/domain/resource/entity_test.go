//go:build unit

package resource_test

import (
	"strings"
	"testing"
	"time"

	"paintball-booking/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResource(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		leadTime int
		errIs    error
	}{
		{name: "trimmed name", field: "  Jungle  ", leadTime: 60},
		{name: "no lead time", field: "Urban", leadTime: 0},
		{name: "blank name", field: "   ", errIs: resource.ErrFieldNameRequired},
		{name: "long name", field: strings.Repeat("é", resource.MaxNameLength+1), errIs: resource.ErrFieldNameTooLong},
		{name: "negative lead time", field: "Forest", leadTime: -5, errIs: resource.ErrNegativeLeadTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resource.NewResource(uuid.New(), tt.field, tt.leadTime, true)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.field), r.Name())
			assert.Equal(t, tt.leadTime, r.LeadTimeMin())
		})
	}
}

func TestResourceLeadTime(t *testing.T) {
	r, err := resource.NewResource(uuid.New(), "Jungle", 90, true)
	require.NoError(t, err)

	now := time.Date(2026, 7, 4, 10, 0, 0, 0, time.UTC)
	earliest := r.EarliestStart(now)

	assert.Equal(t, now.Add(90*time.Minute), earliest)
	assert.True(t, r.IsBookableAt(now, earliest))
	assert.False(t, r.IsBookableAt(now, earliest.Add(-time.Minute)))
	assert.True(t, r.IsBookableAt(now, earliest.Add(24*time.Hour)))
}
