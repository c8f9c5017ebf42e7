package standalone

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/user-none/libview/standalone/storage"
)

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		wantView   string
		wantPolicy string
	}{
		{"no overrides", Options{}, "icon", "single"},
		{"view only", Options{ViewMode: "list"}, "list", "single"},
		{"policy only", Options{OpenPolicy: "multi"}, "icon", "multi"},
		{"both", Options{ViewMode: "list", OpenPolicy: "multi"}, "list", "multi"},
		{"paths ignored", Options{DataDir: "/tmp/x", LibraryPath: "/tmp/x/lib.json"}, "icon", "single"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := storage.DefaultConfig()
			applyOverrides(cfg, tc.opts)
			if cfg.Library.ViewMode != tc.wantView {
				t.Errorf("ViewMode = %q, want %q", cfg.Library.ViewMode, tc.wantView)
			}
			if cfg.Library.OpenPolicy != tc.wantPolicy {
				t.Errorf("OpenPolicy = %q, want %q", cfg.Library.OpenPolicy, tc.wantPolicy)
			}
		})
	}
}

const sampleLibrary = `{"version": 1, "games": {"a": {"id": "a", "name": "Alpha", "displayName": "Alpha", "region": "us"}}}`

func TestReadLibraryRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.json")
	if err := os.WriteFile(path, []byte(sampleLibrary), 0644); err != nil {
		t.Fatal(err)
	}

	lib, savePath, err := readLibrary(path)
	if err != nil {
		t.Fatalf("readLibrary failed: %v", err)
	}
	if lib.GameCount() != 1 {
		t.Errorf("expected 1 game, got %d", lib.GameCount())
	}
	if savePath != path {
		t.Errorf("savePath = %q, want the source path %q", savePath, path)
	}
}

func TestReadLibraryArchiveImportsCopy(t *testing.T) {
	dataDir := t.TempDir()
	storage.SetBaseDir(dataDir)
	defer storage.SetBaseDir("")
	if err := storage.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, err := w.Create("share/arcade.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(sampleLibrary)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	archive := filepath.Join(t.TempDir(), "arcade.zip")
	if err := os.WriteFile(archive, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	lib, savePath, err := readLibrary(archive)
	if err != nil {
		t.Fatalf("readLibrary failed: %v", err)
	}
	if lib.GameCount() != 1 {
		t.Errorf("expected 1 game, got %d", lib.GameCount())
	}
	want := filepath.Join(dataDir, "libraries", "arcade.json")
	if savePath != want {
		t.Errorf("savePath = %q, want %q", savePath, want)
	}

	copied, err := storage.LoadLibraryFile(savePath)
	if err != nil {
		t.Fatalf("imported copy unreadable: %v", err)
	}
	if copied.GetGame("a") == nil {
		t.Error("imported copy should contain game a")
	}
}

func TestReadLibraryCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := readLibrary(path); err == nil {
		t.Error("expected error for corrupt library")
	}
}
