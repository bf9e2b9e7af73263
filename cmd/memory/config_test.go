package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "memory.yaml")

	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(data, config.DefaultYAML()) {
		t.Error("written file differs from the built-in defaults")
	}
	if _, err := config.ParseMemory(data); err != nil {
		t.Errorf("written file does not parse: %v", err)
	}

	err = writeDefaultConfig(path)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second write err = %v, want already exists", err)
	}
}
