package ctxlogger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(ContextHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	ctx := AppendCtx(context.Background(), slog.String("request_id", "r1"))
	child := AppendCtx(ctx, slog.String("room_id", "abc"))
	logger.InfoContext(child, "hello", "k", "v")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "r1", record["request_id"])
	assert.Equal(t, "abc", record["room_id"])
	assert.Equal(t, "v", record["k"])

	buf.Reset()
	logger.InfoContext(ctx, "parent")
	var parent map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parent))
	assert.Equal(t, "r1", parent["request_id"])
	_, ok := parent["room_id"]
	assert.False(t, ok, "child attributes must not leak into the parent context")
}
