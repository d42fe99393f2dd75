package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func TestHeartbeatWriterForwardsBroadcasts(t *testing.T) {
	send := make(chan []byte, 4)
	writerDone := make(chan error, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.Upgrader{}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		writerDone <- writeWSWithHeartbeat(conn, send)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	send <- mustMarshal(wsMessage{Type: "status", Payload: json.RawMessage(`{"move_count":3}`)})
	_, data, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg wsMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	if msg.Type != "status" {
		t.Fatalf("expected status message, got %q", msg.Type)
	}

	close(send)
	if err := <-writerDone; err != nil {
		t.Fatalf("writer exited with error: %v", err)
	}
}
