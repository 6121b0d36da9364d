package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepInDevelopment(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{key: "correlation_id", expected: true},
		{key: "record_id", expected: true},
		{key: "records_skipped", expected: true},
		{key: "window_start", expected: true},
		{key: "driver_count", expected: true},
		{key: "user_agent", expected: false},
		{key: "referer", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, keepInDevelopment(tt.key))
		})
	}
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}
