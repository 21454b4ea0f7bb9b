package wsrouter

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeReader struct {
	frames [][]byte
}

func (f *fakeReader) ReadMessage() (int, []byte, error) {
	if len(f.frames) == 0 {
		return 0, nil, io.EOF
	}

	frame := f.frames[0]
	f.frames = f.frames[1:]
	return 1, frame, nil
}

func TestServeConn(t *testing.T) {
	var handled []string
	var order []string

	r := New(func(ctx context.Context, frame []byte) error {
		handled = append(handled, GetMessageTypeFromCtx(ctx)+":"+string(frame))
		return errors.New("handler failure")
	}, func(frame []byte) string { return "T" + string(frame[:1]) })

	for _, name := range []string{"outer", "inner"} {
		r.Use(func(next HandlerFunc) HandlerFunc {
			return func(ctx context.Context, frame []byte) error {
				order = append(order, name)
				return next(ctx, frame)
			}
		})
	}

	err := r.ServeConn(context.Background(), &fakeReader{frames: [][]byte{[]byte("a1"), []byte("b2")}})
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"Ta:a1", "Tb:b2"}, handled, "handler errors must not stop the loop")
	assert.Equal(t, []string{"outer", "inner", "outer", "inner"}, order)
}

func TestGetMessageTypeFromEmptyCtx(t *testing.T) {
	assert.Empty(t, GetMessageTypeFromCtx(context.Background()))
}
