package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWritesToRotatingFile(t *testing.T) {
	orig, _ := os.Getwd()
	dir := t.TempDir()
	defer os.Chdir(orig)
	_ = os.Chdir(dir)

	l := GetLogger()
	l.Log("session opened")
	l.Logf("height=%d", 20)
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(".consoletk", "debug.log"))
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "session opened") {
		t.Errorf("log missing plain message: %q", content)
	}
	if !strings.Contains(content, "height=20") {
		t.Errorf("log missing formatted message: %q", content)
	}
}

func TestGetLoggerReturnsSingleton(t *testing.T) {
	if GetLogger() != GetLogger() {
		t.Error("expected the same logger instance on every call")
	}
}
