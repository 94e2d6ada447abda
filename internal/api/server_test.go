package api

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"hellod/internal/config"
	"hellod/internal/slogutil"
)

func TestStart_BindFailure(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen failed: %v", err)
	}
	defer occupied.Close()

	cfg := config.DefaultConfig()
	cfg.Server.Port = occupied.Addr().(*net.TCPAddr).Port
	srv := testServerWith(t, cfg, slogutil.NewDiscardLogger())

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("Start should fail when the port is in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return on bind failure")
	}
}

func TestServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen failed: %v", err)
	}

	srv := testServer(t)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	base := "http://" + ln.Addr().String()

	// The default transport asks for gzip and decompresses transparently.
	resp, err := http.Get(base + "/hey")
	if err != nil {
		t.Fatalf("GET /hey failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if string(body) != "Hey there!" {
		t.Errorf("body = %q, want %q", body, "Hey there!")
	}
	if !resp.Uncompressed {
		t.Error("response should have been gzip-encoded on the wire")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v after Shutdown, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

func TestConcurrentRequests(t *testing.T) {
	srv := testServer(t)

	const workers = 32
	errs := make(chan string, workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			id := strconv.Itoa(i)
			rec := doRequest(srv, "GET", "/users/"+id+"/friend"+id, nil)
			want := "Welcome friend" + id + ", user_id " + id + "!"
			if rec.Body.String() != want {
				errs <- rec.Body.String()
				return
			}
			errs <- ""
		}(i)
	}

	for i := 0; i < workers; i++ {
		if got := <-errs; got != "" {
			t.Errorf("unexpected body %q", got)
		}
	}
}

func TestAddr(t *testing.T) {
	srv := testServer(t)
	if srv.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", srv.Addr())
	}
}
