package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldesr/quizline/internal/catalog/memory"
)

func dialTestHandler(t *testing.T) (*websocket.Conn, context.Context) {
	t.Helper()

	logger := zerolog.Nop()
	srv := httptest.NewServer(NewHandler(memory.New(), &logger))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	return conn, ctx
}

// collectFrames reads text frames until the server closes the socket.
func collectFrames(ctx context.Context, conn *websocket.Conn) []string {
	var frames []string
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return frames
		}
		frames = append(frames, string(data))
	}
}

func TestHandlerSpeaksOneLinePerFrame(t *testing.T) {
	conn, ctx := dialTestHandler(t)

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("credits")))
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("quit")))

	frames := collectFrames(ctx, conn)

	joined := strings.Join(frames, "\n")
	assert.Contains(t, joined, `Type "help" to list commands.`)
	assert.Contains(t, joined, "Quizline author:")
	for _, frame := range frames {
		assert.NotContains(t, frame, "\x1b[", "frames must carry plain text")
	}
}

func TestHandlerRunsCommandChains(t *testing.T) {
	conn, ctx := dialTestHandler(t)

	for _, line := range []string{"add", "capital of chile", "santiago", "show 1", "quit"} {
		require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(line)))
	}

	joined := strings.Join(collectFrames(ctx, conn), "\n")
	assert.Contains(t, joined, "Added")
	assert.Contains(t, joined, "capital of chile")
	assert.Contains(t, joined, "santiago")
}

func TestHandlerClosesNormallyOnQuit(t *testing.T) {
	conn, ctx := dialTestHandler(t)

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("quit")))

	for {
		_, _, err := conn.Read(ctx)
		if err != nil {
			assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
			return
		}
	}
}
