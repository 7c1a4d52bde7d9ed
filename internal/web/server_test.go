package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	. "github.com/onsi/gomega" //nolint:revive

	"github.com/private-landing/calc/internal/api"
)

func newTestServer(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(apiKey, nil))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) api.Frame {
	t.Helper()
	var f api.Frame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return f
}

func TestIndexRendersKeypad(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/")
	g.Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	g.Expect(resp.StatusCode).To(Equal(http.StatusOK))
	g.Expect(string(body)).To(ContainSubstring(`value="clearElement"`))
	g.Expect(string(body)).To(ContainSubstring(`value="equals"`))
	g.Expect(strings.Count(string(body), `class="calculator__button"`)).To(Equal(20))
}

func TestStaticAssets(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t, "")

	for _, path := range []string{"/static/app.js", "/static/style.css"} {
		resp, err := http.Get(srv.URL + path)
		g.Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()
		g.Expect(resp.StatusCode).To(Equal(http.StatusOK), path)
	}

	resp, err := http.Get(srv.URL + "/nope")
	g.Expect(err).NotTo(HaveOccurred())
	resp.Body.Close()
	g.Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
}

func TestKeymap(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t, "")

	keys, err := api.NewClient(srv.URL, "").Keymap(context.Background())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(keys).To(ContainElements("Enter", "Escape", "Backspace", "+", ",", "7"))
	g.Expect(keys).NotTo(ContainElement("q"))
}

func TestWebsocketSession(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t, "")
	conn := dial(t, srv)

	first := readFrame(t, conn)
	g.Expect(first.Primary).To(Equal("0"))
	g.Expect(first.Handled).To(BeFalse())

	steps := []struct {
		event     api.Event
		primary   string
		secondary string
		handled   bool
	}{
		{api.Event{Source: api.SourceKey, Value: "3"}, "3", "", true},
		{api.Event{Source: api.SourceClick, Value: "add"}, "3", "3 +", true},
		{api.Event{Source: api.SourceKey, Value: "4"}, "4", "3 +", true},
		{api.Event{Source: api.SourceKey, Value: "q"}, "4", "3 +", false},
		{api.Event{Source: api.SourceKey, Value: "+"}, "4", "7 +", true},
		{api.Event{Source: api.SourceClick, Value: "5"}, "5", "7 +", true},
		{api.Event{Source: api.SourceKey, Value: "Enter"}, "12", "", true},
	}
	for _, st := range steps {
		g.Expect(conn.WriteJSON(st.event)).To(Succeed())
		f := readFrame(t, conn)
		g.Expect(f.Primary).To(Equal(st.primary), "after %+v", st.event)
		g.Expect(f.Secondary()).To(Equal(st.secondary), "after %+v", st.event)
		g.Expect(f.Handled).To(Equal(st.handled), "after %+v", st.event)
	}
}

func TestWebsocketDropsMalformedFrames(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t, "")
	conn := dial(t, srv)
	readFrame(t, conn)

	g.Expect(conn.WriteMessage(websocket.TextMessage, []byte("{not json"))).To(Succeed())
	g.Expect(conn.WriteMessage(websocket.TextMessage, []byte(`{"source": 7}`))).To(Succeed())
	g.Expect(conn.WriteJSON(api.Event{Source: api.SourceKey, Value: "9"})).To(Succeed())

	f := readFrame(t, conn)
	g.Expect(f.Primary).To(Equal("9"))
	g.Expect(f.Handled).To(BeTrue())
}

func TestWebsocketPagesAreIndependent(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t, "")
	a, b := dial(t, srv), dial(t, srv)
	readFrame(t, a)
	readFrame(t, b)

	g.Expect(a.WriteJSON(api.Event{Source: api.SourceKey, Value: "8"})).To(Succeed())
	g.Expect(readFrame(t, a).Primary).To(Equal("8"))

	g.Expect(b.WriteJSON(api.Event{Source: api.SourceKey, Value: "."})).To(Succeed())
	g.Expect(readFrame(t, b).Primary).To(Equal("0."))
}

func TestApplyStateless(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t, "")
	c := api.NewClient(srv.URL, "")

	resp, err := c.Apply(context.Background(), api.ApplyRequest{Events: []api.Event{
		{Source: api.SourceKey, Value: "5"},
		{Source: api.SourceClick, Value: "div"},
		{Source: api.SourceKey, Value: "0"},
		{Source: api.SourceKey, Value: "Tab"},
	}})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(resp.Handled).To(Equal([]bool{true, true, true, false}))
	g.Expect(resp.Display.Secondary()).To(Equal("5 /"))

	next, err := c.Apply(context.Background(), api.ApplyRequest{
		State:  &resp.State,
		Events: []api.Event{{Source: api.SourceKey, Value: "="}},
	})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(next.Display.Primary).To(Equal("Infinity"))
	g.Expect(next.State.Previous).To(Equal("Infinity"))
	g.Expect(next.State.Pending).To(BeEmpty())
}

func TestApplyRejectsBadRequests(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t, "")

	tests := []struct {
		body string
		code string
	}{
		{`{"events": [`, "BAD_REQUEST"},
		{`{"state": {"buffer": ""}, "events": []}`, "INVALID_STATE"},
		{`{"state": {"buffer": "1", "pending": "pow"}, "events": []}`, "INVALID_STATE"},
	}
	for _, tt := range tests {
		resp, err := http.Post(srv.URL+"/api/apply", "application/json", bytes.NewBufferString(tt.body))
		g.Expect(err).NotTo(HaveOccurred())
		var apiErr api.APIError
		g.Expect(json.NewDecoder(resp.Body).Decode(&apiErr)).To(Succeed())
		resp.Body.Close()

		g.Expect(resp.StatusCode).To(Equal(http.StatusBadRequest), tt.body)
		g.Expect(apiErr.Code).To(Equal(tt.code), tt.body)
	}
}

func TestApplyRequiresKeyWhenConfigured(t *testing.T) {
	g := NewWithT(t)
	srv := newTestServer(t, "s3cret")
	req := api.ApplyRequest{Events: []api.Event{{Source: api.SourceKey, Value: "1"}}}

	_, err := api.NewClient(srv.URL, "wrong").Apply(context.Background(), req)
	g.Expect(err).To(MatchError(ContainSubstring("UNAUTHORIZED")))

	resp, err := api.NewClient(srv.URL, "s3cret").Apply(context.Background(), req)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(resp.Display.Primary).To(Equal("1"))
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- NewServer("", nil).ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()
	if err := <-errc; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
