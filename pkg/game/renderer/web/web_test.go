package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"awaresnake/pkg/engine/input"
	"awaresnake/pkg/engine/world"
	"awaresnake/pkg/game/state"
)

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readState(t *testing.T, conn *websocket.Conn) state.Snapshot {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if msg.Type != "state" {
		t.Fatalf("message type = %q, want state", msg.Type)
	}
	return msg.State
}

func nextIntent(t *testing.T, s *Server) input.Intent {
	t.Helper()
	select {
	case intent := <-s.Intents():
		return intent
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an intent")
		return input.Intent{}
	}
}

func TestIndex(t *testing.T) {
	s := New("127.0.0.1:0")
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), `id="board"`) {
		t.Error("index page has no board")
	}

	resp, err = http.Get(ts.URL + "/missing")
	if err != nil {
		t.Fatalf("GET /missing: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestWebSocketRoundTrip(t *testing.T) {
	s := New("127.0.0.1:0")
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	s.RenderFrame(state.Snapshot{
		GridSize: 20,
		Snake:    []world.Position{{X: 10, Y: 10}},
		Food:     world.Position{X: 15, Y: 15},
		Score:    10,
	})

	conn := dial(t, ts)
	if got := readState(t, conn); got.Score != 10 || got.GridSize != 20 {
		t.Errorf("initial state = %+v, want score 10 on a 20 grid", got)
	}
	if n := s.Clients(); n != 1 {
		t.Errorf("Clients() = %d, want 1", n)
	}

	s.RenderFrame(state.Snapshot{GridSize: 20, Score: 20, HasRealized: true, Messages: []string{"hi"}})
	got := readState(t, conn)
	if got.Score != 20 || !got.HasRealized || len(got.Messages) != 1 {
		t.Errorf("broadcast state = %+v", got)
	}

	for _, tt := range []struct {
		action string
		want   input.Action
	}{
		{"up", input.ActionMoveUp},
		{"pause", input.ActionPause},
		{"reset", input.ActionReset},
	} {
		if err := conn.WriteJSON(ClientMessage{Action: tt.action}); err != nil {
			t.Fatalf("WriteJSON: %v", err)
		}
		if got := nextIntent(t, s); got.Action != tt.want {
			t.Errorf("action %q -> %v, want %v", tt.action, got.Action, tt.want)
		}
	}
}

func TestWebSocketIgnoresQuitAndUnknown(t *testing.T) {
	s := New("127.0.0.1:0")
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()
	conn := dial(t, ts)

	for _, a := range []string{"quit", "jump", "left"} {
		if err := conn.WriteJSON(ClientMessage{Action: a}); err != nil {
			t.Fatalf("WriteJSON: %v", err)
		}
	}
	if got := nextIntent(t, s); got.Action != input.ActionMoveLeft {
		t.Errorf("first intent = %v, want move left", got.Action)
	}
}

func TestServerMessageShape(t *testing.T) {
	data, err := json.Marshal(ServerMessage{Type: "state", State: state.Snapshot{GridSize: 4}})
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"type", "state"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("message missing %q: %s", key, data)
		}
	}
}
