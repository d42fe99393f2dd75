package main

import (
	"time"

	"github.com/gorilla/websocket"
)

// Proxies and browsers drop websockets that stay silent too long; a ping
// goes out whenever no broadcast has been written for a full interval.
const wsIdlePingInterval = 30 * time.Second

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	idle := time.NewTimer(wsIdlePingInterval)
	defer idle.Stop()
	ping := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			if !idle.Stop() {
				<-idle.C
			}
		case <-idle.C:
			if err := conn.WriteMessage(websocket.TextMessage, ping); err != nil {
				return err
			}
		}
		idle.Reset(wsIdlePingInterval)
	}
}
