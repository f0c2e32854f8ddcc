package chatbot

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"yatra/backend"
	"yatra/session"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// inboundPayload is what the widget sends us.
type inboundPayload struct {
	Message string `json:"message"`
}

// outboundPayload is what we push back: a reply or a user-facing error.
type outboundPayload struct {
	Reply     string `json:"reply,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// WebSocketHandler relays widget messages to the backend assistant.
// The session is resolved once at connect time; each message becomes
// one POST /api/chat with the session token. Guests get an auth prompt
// instead of a relay.
func WebSocketHandler(hub *Hub, api *backend.Client, sessions *session.Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		sess := sessions.Current(r.Context(), r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		client := &Client{
			Conn:  conn,
			Send:  make(chan []byte, 16),
			Token: sess.Token,
		}
		hub.Register(client)

		go writePump(client)
		go readPump(hub, api, client)
	}
}

func readPump(hub *Hub, api *backend.Client, c *Client) {
	defer func() {
		hub.Unregister(c)
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			return
		}
		var in inboundPayload
		if err := json.Unmarshal(raw, &in); err != nil || in.Message == "" {
			continue
		}

		if c.Token == "" {
			hub.Deliver(c, marshalOut(outboundPayload{Error: "Please log in to chat with the assistant"}))
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		reply, err := api.Chat(ctx, c.Token, in.Message)
		cancel()
		if err != nil {
			hub.Deliver(c, marshalOut(outboundPayload{Error: chatNotice(err)}))
			continue
		}
		hub.Deliver(c, marshalOut(outboundPayload{Reply: reply.Reply}))
	}
}

func writePump(c *Client) {
	for data := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func marshalOut(out outboundPayload) []byte {
	out.Timestamp = time.Now().Unix()
	data, _ := json.Marshal(out)
	return data
}

func chatNotice(err error) string {
	switch {
	case errors.Is(err, backend.ErrAuth):
		return "Your session expired, please log in again"
	case errors.Is(err, backend.ErrNetwork):
		return "The assistant is unreachable right now"
	default:
		return "The assistant could not answer, please try again"
	}
}
