package dev

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sitewinder-dev/sitewinder/internal/config"
)

func TestWatcher_DetectsModification(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "app.css")
	if err := os.WriteFile(testFile, []byte("body {}"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Interval: 20 * time.Millisecond,
	})
	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) { changes <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)
	time.Sleep(60 * time.Millisecond)

	// Touch with a future mtime so coarse filesystem clocks cannot
	// hide the change.
	future := time.Now().Add(time.Second)
	if err := os.Chtimes(testFile, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeCSS {
			t.Errorf("expected ChangeCSS, got %v", change.Type)
		}
		if change.Path != testFile {
			t.Errorf("expected path %q, got %q", testFile, change.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for change")
	}
	watcher.Stop()
}

func TestWatcher_DetectsNewFile(t *testing.T) {
	tmpDir := t.TempDir()
	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Interval: 20 * time.Millisecond,
	})
	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) { changes <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)
	time.Sleep(60 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(tmpDir, "logo.svg"), []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeAsset {
			t.Errorf("expected ChangeAsset, got %v", change.Type)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for new file")
	}
	watcher.Stop()
}

func TestWatcher_IgnorePatterns(t *testing.T) {
	w := NewWatcher(WatcherConfig{Paths: nil})

	tests := []struct {
		path string
		want bool
	}{
		{"app/main.go", false},
		{"app/main_test.go", true},
		{"project/.git/config", true},
		{"project/node_modules/x/y.js", true},
		{"project/dist/index.html", true},
		{"app/file.tmp", true},
		{"app/styles.css", false},
	}
	for _, tt := range tests {
		if got := w.ignored(tt.path); got != tt.want {
			t.Errorf("ignored(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"a/styles.css", ChangeCSS},
		{"a/styles.SCSS", ChangeCSS},
		{"a/main.go", ChangeSource},
		{"a/app.wasm", ChangeSource},
		{"a/index.html", ChangeAsset},
		{"a/logo.png", ChangeAsset},
	}
	for _, tt := range tests {
		if got := classify(tt.path); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestReloadServer_Broadcast(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()
	defer rs.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// Wait until the server has registered the client.
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	rs.NotifyCSS("app.css")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != ReloadTypeCSS || msg.File != "app.css" {
		t.Errorf("unexpected message: %+v", msg)
	}
}

func newTestProject(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	pub := filepath.Join(dir, "public")
	if err := os.MkdirAll(pub, 0755); err != nil {
		t.Fatal(err)
	}
	html := "<html><body><div id=\"app\"></div></body></html>"
	if err := os.WriteFile(filepath.Join(pub, "index.html"), []byte(html), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pub, "app.css"), []byte("body {}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("name: test\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestServerServesHTMLWithReloadScript(t *testing.T) {
	cfg := newTestProject(t)
	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Shutdown(context.Background())

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !bytes.Contains(body, []byte("_sitewinder/reload")) {
		t.Error("reload script not injected into HTML")
	}
	if !bytes.Contains(body, []byte("</body>")) {
		t.Error("body close tag lost during injection")
	}
	idxScript := bytes.Index(body, []byte("_sitewinder/reload"))
	idxClose := bytes.Index(body, []byte("</body>"))
	if idxScript > idxClose {
		t.Error("script should be injected before </body>")
	}
}

func TestServerServesPlainAssets(t *testing.T) {
	cfg := newTestProject(t)
	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Shutdown(context.Background())

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/app.css")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "body {}" {
		t.Errorf("asset body = %q", body)
	}

	resp2, err := http.Get(ts.URL + "/missing.js")
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Errorf("missing asset status = %d", resp2.StatusCode)
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	cfg := newTestProject(t)
	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Shutdown(context.Background())

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("metrics status = %d", resp.StatusCode)
	}
}

func TestServerStateEndpoints(t *testing.T) {
	cfg := newTestProject(t)
	cfg.Dev.StateFile = ".sitewinder/state.db"
	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Shutdown(context.Background())

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	// PUT a snapshot.
	put, _ := http.NewRequest(http.MethodPut, ts.URL+"/_sitewinder/state/session",
		strings.NewReader(`{"count": 3}`))
	resp, err := http.DefaultClient.Do(put)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("put status = %d", resp.StatusCode)
	}

	// GET it back.
	resp, err = http.Get(ts.URL + "/_sitewinder/state/session")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var snap map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if _, ok := snap["count"]; !ok {
		t.Errorf("snapshot missing key: %v", snap)
	}

	// GET a missing one.
	resp, err = http.Get(ts.URL + "/_sitewinder/state/ghost")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing snapshot status = %d", resp.StatusCode)
	}
}

func TestCollectWatchPaths(t *testing.T) {
	cfg := newTestProject(t)
	cfg.Dev.Watch = []string{"app", "public"}

	paths := CollectWatchPaths(cfg)
	seen := map[string]bool{}
	for _, p := range paths {
		if seen[p] {
			t.Errorf("duplicate watch path %q", p)
		}
		seen[p] = true
	}
	wantStatic := cfg.StaticPath()
	if !seen[filepath.Clean(wantStatic)] {
		t.Errorf("static dir %q missing from %v", wantStatic, paths)
	}
}
