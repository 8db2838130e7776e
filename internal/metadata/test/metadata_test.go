package metadata_test

import (
	"context"
	"testing"

	"github.com/bionicotaku/lingo-services-media/internal/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectSkipsZeroMetadata(t *testing.T) {
	ctx := metadata.Inject(context.Background(), metadata.HandlerMetadata{})
	_, ok := metadata.FromContext(ctx)
	assert.False(t, ok)
}

func TestInjectAndRead(t *testing.T) {
	meta := metadata.HandlerMetadata{IdempotencyKey: "idem-1", RequestID: "req-1", UserAgent: "curl"}
	ctx := metadata.Inject(context.Background(), meta)

	got, ok := metadata.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, meta, got)
}

func TestFromNilContext(t *testing.T) {
	var ctx context.Context
	_, ok := metadata.FromContext(ctx)
	assert.False(t, ok)
}

func TestCorrelationID(t *testing.T) {
	assert.Equal(t, "req", metadata.HandlerMetadata{RequestID: " req ", IdempotencyKey: "idem"}.CorrelationID())
	assert.Equal(t, "idem", metadata.HandlerMetadata{IdempotencyKey: "idem"}.CorrelationID())
	assert.Empty(t, metadata.HandlerMetadata{}.CorrelationID())
}
