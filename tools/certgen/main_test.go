package main

import (
	"crypto/tls"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRun_WritesUsablePair(t *testing.T) {
	dir := t.TempDir()
	if err := run([]string{"-dir", dir, "-hosts", "localhost", "-valid-for", "1h"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := tls.LoadX509KeyPair(filepath.Join(dir, "server.crt"), filepath.Join(dir, "server.key")); err != nil {
		t.Fatalf("generated files are not a valid key pair: %v", err)
	}
}

func TestRun_NestedDirWithTrailingSlash(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "certs")
	if err := run([]string{"-dir", dir + string(filepath.Separator), "-hosts", "localhost"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := tls.LoadX509KeyPair(filepath.Join(dir, "server.crt"), filepath.Join(dir, "server.key")); err != nil {
		t.Fatalf("expected key pair under %s: %v", dir, err)
	}
}

func TestRun_NoHosts(t *testing.T) {
	if err := run([]string{"-dir", t.TempDir(), "-hosts", " , "}); err == nil {
		t.Fatal("expected error for empty host list")
	}
}

func TestSplitHosts(t *testing.T) {
	got := splitHosts(" localhost, 127.0.0.1 ,,api.local")
	want := []string{"localhost", "127.0.0.1", "api.local"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitHosts = %v; want %v", got, want)
	}
}
