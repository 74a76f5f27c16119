package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWebSocketService(t *testing.T) {
	s := testService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.WebSocketService(ctx); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.DefaultServeMux)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/api"
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}

	op := SOp{Eval: &OpEval{Src: "NOx - NO2"}}
	js, err := json.Marshal(&op)
	if err != nil {
		t.Fatal(err)
	}
	if err = c.WriteMessage(websocket.TextMessage, js); err != nil {
		t.Fatal(err)
	}

	_, message, err := c.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	var got SOp
	if err = json.Unmarshal(message, &got); err != nil {
		t.Fatal(err)
	}
	if got.Err != "" {
		t.Fatal(got.Err)
	}
	if got.Eval == nil || got.Eval.Result == nil {
		t.Fatalf("got %s", message)
	}

	// Ops forwarded while the connection is tearing down must not
	// panic the firehose goroutine.
	c.Close()
	for i := 0; i < 100; i++ {
		s.op(ctx, &SOp{Eval: &OpEval{Src: "NOx"}})
	}
	time.Sleep(50 * time.Millisecond)
}
