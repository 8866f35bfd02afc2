package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"flipd/internal/httpapi"
	"flipd/internal/registry"
	"flipd/internal/slotpool"
	"flipd/internal/window"
	"flipd/pkg/types"
)

// createTempItemsDir creates a temporary directory populated with empty files
// and returns its path.
func createTempItemsDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		writeItem(t, dir, n)
	}
	return dir
}

func writeItem(t *testing.T, dir, name string) {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(""), 0o644); err != nil {
		t.Fatalf("write temp item %s: %v", p, err)
	}
}

// newServerForDir wires the directory source, the pool and the mux exactly
// like `flipd serve` does and shows the first window when items exist.
func newServerForDir(t *testing.T, dir, ext string, cfg window.Config) (*httptest.Server, *slotpool.Pool) {
	t.Helper()
	src, err := registry.OpenDir(dir, ext)
	if err != nil {
		t.Fatalf("scan items: %v", err)
	}
	pool, err := slotpool.NewWithConfig(slotpool.PoolConfig{Window: cfg, Source: src, Publisher: httpapi.PlanMetrics{}})
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	if src.Count() > 0 {
		if _, err := pool.ShowOnly(0); err != nil {
			t.Fatalf("initial show: %v", err)
		}
	}
	srv := httptest.NewServer(httpapi.NewMux(pool))
	t.Cleanup(srv.Close)
	return srv, pool
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

// postPlan POSTs to path and decodes the plan, failing on a non-200 answer.
func postPlan(t *testing.T, url string, payload []byte) types.PlanResponse {
	t.Helper()
	resp, body := httpPostJSON(t, url, payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST %s status=%d body=%s", url, resp.StatusCode, string(body))
	}
	var plan types.PlanResponse
	if err := json.Unmarshal(body, &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	return plan
}

func getStatus(t *testing.T, base string) types.StatusResponse {
	t.Helper()
	resp, body := httpGet(t, base+"/window")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/window status=%d", resp.StatusCode)
	}
	var st types.StatusResponse
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	return st
}

func kinds(plan types.PlanResponse) map[string]int {
	out := map[string]int{}
	for _, in := range plan.Intents {
		out[in.Kind]++
	}
	return out
}
