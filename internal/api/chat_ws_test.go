package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/fallback"
	"github.com/bridgepath-ai/gateway/internal/generation"
	"github.com/bridgepath-ai/gateway/internal/mocks"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wsClient struct {
	t    *testing.T
	ctx  context.Context
	conn *websocket.Conn
}

func dialChat(t *testing.T, srv *testServer, sessionID string) *wsClient {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	url := "ws" + strings.TrimPrefix(srv.server.URL, "http") + "/api/chats/" + sessionID + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	return &wsClient{t: t, ctx: ctx, conn: conn}
}

func (c *wsClient) send(msg WSClientMessage) {
	c.t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(c.t, err)
	require.NoError(c.t, c.conn.Write(c.ctx, websocket.MessageText, data))
}

func (c *wsClient) sendRaw(data string) {
	c.t.Helper()
	require.NoError(c.t, c.conn.Write(c.ctx, websocket.MessageText, []byte(data)))
}

func (c *wsClient) receive() WSServerMessage {
	c.t.Helper()
	_, data, err := c.conn.Read(c.ctx)
	require.NoError(c.t, err)

	var msg WSServerMessage
	require.NoError(c.t, json.Unmarshal(data, &msg))
	return msg
}

func TestServeWS_Conversation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestGateway(t, &mocks.MockProvider{}, true), nil)
	created := createChat(t, srv, "")
	client := dialChat(t, srv, created.SessionID)

	client.send(WSClientMessage{Type: WSTypePing})
	assert.Equal(t, WSTypePong, client.receive().Type)

	for _, text := range []string{"first", "second", "third"} {
		client.send(WSClientMessage{Type: WSTypeMessage, Text: text})
		reply := client.receive()
		require.Equal(t, WSTypeReply, reply.Type)
		require.NotNil(t, reply.Message)
		assert.Equal(t, domain.RoleModel, reply.Message.Role)
		assert.Equal(t, "reply to: "+text, reply.Message.Text)
		assert.False(t, reply.Demo)
	}

	session, err := srv.sessions.Get(created.SessionID)
	require.NoError(t, err)
	assert.Len(t, session.History(), 6)
}

func TestServeWS_Errors(t *testing.T) {
	t.Parallel()

	provider := &mocks.MockProvider{Chat: &mocks.MockChatHandle{Err: generation.ErrTransientFailure}}
	srv := newTestServer(t, newTestGateway(t, provider, true), nil)
	created := createChat(t, srv, "")
	client := dialChat(t, srv, created.SessionID)

	client.sendRaw("{not json")
	msg := client.receive()
	assert.Equal(t, WSTypeError, msg.Type)
	assert.Equal(t, "invalid message format", msg.Error)

	client.send(WSClientMessage{Type: "typing"})
	assert.Equal(t, "unknown message type", client.receive().Error)

	client.send(WSClientMessage{Type: WSTypeMessage, Text: " "})
	msg = client.receive()
	assert.Equal(t, WSTypeError, msg.Type)
	assert.Equal(t, "Message text is required", msg.Error)

	client.send(WSClientMessage{Type: WSTypeMessage, Text: "anyone there?"})
	msg = client.receive()
	require.Equal(t, WSTypeReply, msg.Type)
	assert.Equal(t, fallback.ChatReply(), msg.Message.Text)
	assert.True(t, msg.Demo)
}

func TestServeWS_UnknownSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestGateway(t, &mocks.MockProvider{}, true), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.server.URL, "http") + "/api/chats/nope/ws"
	_, resp, err := websocket.Dial(ctx, url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 404, resp.StatusCode)
}
