package chatbot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"yatra/backend"
	"yatra/globals"
	"yatra/models"
	"yatra/session"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

func TestHubRegisterDeliverUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:  make(chan []byte, 10),
		Token: "tok",
	}
	hub.Register(client)

	msg := outboundPayload{Reply: "hello test"}
	data, _ := json.Marshal(msg)
	hub.Deliver(client, data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.Unregister(client)
}

func TestWebSocketRelay(t *testing.T) {
	// Fake assistant backend.
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Missing token"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"reply": "Visit Hampi in winter."})
	}))
	defer api.Close()

	storage := session.NewMemoryStorage()
	sessions := session.NewStore(backend.New(api.URL), storage, time.Hour)
	if err := storage.Save(context.Background(),
		&models.Session{ID: "s1", Token: "tok", Role: models.RoleUser}, time.Hour); err != nil {
		t.Fatal(err)
	}

	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	router := httprouter.New()
	router.GET("/ws/chat", WebSocketHandler(hub, backend.New(api.URL), sessions))
	srv := httptest.NewServer(router)
	defer srv.Close()

	header := http.Header{}
	header.Set("Cookie", globals.SessionCookie+"=s1")
	conn, _, err := websocket.DefaultDialer.Dial(
		"ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/chat", header)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(inboundPayload{Message: "where should I go?"}); err != nil {
		t.Fatal(err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var out outboundPayload
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Reply != "Visit Hampi in winter." || out.Error != "" {
		t.Fatalf("got %+v", out)
	}
}

func TestWebSocketGuestGetsPrompt(t *testing.T) {
	sessions := session.NewStore(backend.New("http://unused"), session.NewMemoryStorage(), time.Hour)

	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	router := httprouter.New()
	router.GET("/ws/chat", WebSocketHandler(hub, backend.New("http://unused"), sessions))
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(
		"ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/chat", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(inboundPayload{Message: "hi"}); err != nil {
		t.Fatal(err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var out outboundPayload
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Error == "" || out.Reply != "" {
		t.Fatalf("expected auth prompt, got %+v", out)
	}
}
