package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newISS(t *testing.T, marketdata string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("iss.only") {
		case "securities":
			w.Write([]byte(`{"securities": {"columns": ["PREVDATE", "SECID", "PREVADMITTEDQUOTE"], "data": [["2024-01-10", "SBER", 271.5]]}}`))
		case "marketdata":
			w.Write([]byte(marketdata))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	t.Run("prints both reports", func(t *testing.T) {
		server := newISS(t, `{"marketdata": {"columns": ["UPDATETIME", "SECID", "LAST"], "data": [["18:39:59", "SBER", 272.1]]}}`)
		path := writeConfig(t, "api:\n  base_url: "+server.URL+"\n")

		var stdout, stderr bytes.Buffer
		if err := run(context.Background(), path, &stdout, &stderr); err != nil {
			t.Fatalf("run failed: %v (stderr: %s)", err, stderr.String())
		}

		want := "\nдата закрытия / Id / цена закрытия\n" +
			"2024-01-10 SBER 271.5\n" +
			"\n" +
			"\nвремя обновления / Id / текущая цена\n" +
			"18:39:59 SBER 272.1\n"
		if stdout.String() != want {
			t.Errorf("stdout = %q, want %q", stdout.String(), want)
		}
		if stderr.Len() != 0 {
			t.Errorf("stderr should be empty at warn level, got %q", stderr.String())
		}
	})

	t.Run("missing column fails the second report", func(t *testing.T) {
		server := newISS(t, `{"marketdata": {"columns": ["UPDATETIME", "SECID"], "data": [["18:39:59", "SBER"]]}}`)
		path := writeConfig(t, "api:\n  base_url: "+server.URL+"\n")

		var stdout, stderr bytes.Buffer
		err := run(context.Background(), path, &stdout, &stderr)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if strings.Contains(stdout.String(), "время обновления") {
			t.Errorf("market data header should not be printed: %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "report failed") {
			t.Errorf("stderr = %q, want report failed", stderr.String())
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		path := writeConfig(t, "log:\n  level: loud\n")

		var stdout, stderr bytes.Buffer
		if err := run(context.Background(), path, &stdout, &stderr); err == nil {
			t.Fatal("expected error, got nil")
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", stdout.String())
		}
		if !strings.Contains(stderr.String(), "failed to load config") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})
}
