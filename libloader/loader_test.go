package libloader

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var testLibrary = []byte(`{"version":1,"games":{}}`)

// createTestFile writes data to a temporary file with the given name
func createTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

// createTestZipFile creates a temporary .zip file with the given entries in order
func createTestZipFile(t *testing.T, entries map[string][]byte, order []string) string {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range order {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file in zip: %v", err)
		}
		if _, err := fw.Write(entries[name]); err != nil {
			t.Fatalf("Failed to write to zip: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return createTestFile(t, "libraries.zip", buf.Bytes())
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("Failed to write to gzip: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close gzip: %v", err)
	}
	return buf.Bytes()
}

func TestLoad_RawJSON(t *testing.T) {
	path := createTestFile(t, "library.json", testLibrary)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(f.Data, testLibrary) {
		t.Errorf("Data mismatch: got %s", f.Data)
	}
	if f.Name != "library.json" {
		t.Errorf("Name = %q, want library.json", f.Name)
	}
	if f.Archived() {
		t.Error("raw file should not be archived")
	}
}

func TestLoad_ZipArchive(t *testing.T) {
	path := createTestZipFile(t, map[string][]byte{
		"README.txt":             []byte("shared collection"),
		"__MACOSX/._arcade.json": []byte("resource fork"),
		"libs/arcade.json":       testLibrary,
	}, []string{"README.txt", "__MACOSX/._arcade.json", "libs/arcade.json"})

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(f.Data, testLibrary) {
		t.Errorf("Data mismatch: got %s", f.Data)
	}
	if f.Name != "arcade.json" {
		t.Errorf("Name = %q, want arcade.json", f.Name)
	}
	if f.Format != FormatZIP || !f.Archived() {
		t.Errorf("Format = %v, want zip", f.Format)
	}
}

func TestLoad_ZipWithoutLibrary(t *testing.T) {
	path := createTestZipFile(t, map[string][]byte{
		"notes.txt": []byte("nothing here"),
	}, []string{"notes.txt"})

	_, err := Load(path)
	if !errors.Is(err, ErrNoLibraryFile) {
		t.Errorf("err = %v, want ErrNoLibraryFile", err)
	}
}

func TestLoad_GzipFile(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		wantName string
	}{
		{"json.gz", "arcade.json.gz", "arcade.json"},
		{"bare gz", "arcade.gz", "arcade.json"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := createTestFile(t, tc.file, gzipBytes(t, testLibrary))

			f, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !bytes.Equal(f.Data, testLibrary) {
				t.Errorf("Data mismatch: got %s", f.Data)
			}
			if f.Name != tc.wantName {
				t.Errorf("Name = %q, want %q", f.Name, tc.wantName)
			}
			if f.Format != FormatGzip {
				t.Errorf("Format = %v, want gzip", f.Format)
			}
		})
	}
}

func TestLoad_TarGz(t *testing.T) {
	var tarBuf bytes.Buffer
	tw := tar.NewWriter(&tarBuf)
	for _, entry := range []struct {
		name string
		data []byte
	}{
		{"collection/cover.png", []byte{0x89, 0x50}},
		{"collection/library.json", testLibrary},
	} {
		hdr := &tar.Header{Name: entry.name, Mode: 0644, Size: int64(len(entry.data)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("Failed to write tar header: %v", err)
		}
		if _, err := tw.Write(entry.data); err != nil {
			t.Fatalf("Failed to write tar entry: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Failed to close tar: %v", err)
	}
	path := createTestFile(t, "collection.tar.gz", gzipBytes(t, tarBuf.Bytes()))

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(f.Data, testLibrary) {
		t.Errorf("Data mismatch: got %s", f.Data)
	}
	if f.Name != "library.json" {
		t.Errorf("Name = %q, want library.json", f.Name)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := createTestFile(t, "library.txt", []byte("plain text"))

	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load("/nonexistent/path/library.json"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		path   string
		want   Format
	}{
		{"zip magic", []byte{0x50, 0x4B, 0x03, 0x04}, "lib.bin", FormatZIP},
		{"empty zip magic", []byte{0x50, 0x4B, 0x05, 0x06}, "lib.bin", FormatZIP},
		{"7z magic", []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}, "lib.bin", Format7z},
		{"gzip magic", []byte{0x1F, 0x8B, 0x08}, "lib.bin", FormatGzip},
		{"rar magic", []byte("Rar!\x1a\x07"), "lib.bin", FormatRAR},
		{"magic beats extension", []byte{0x50, 0x4B, 0x03, 0x04}, "library.json", FormatZIP},
		{"zip extension", nil, "lib.ZIP", FormatZIP},
		{"7z extension", nil, "lib.7z", Format7z},
		{"tgz extension", nil, "lib.tgz", FormatGzip},
		{"rar extension", nil, "lib.rar", FormatRAR},
		{"json", []byte(`{"version"`), "library.json", FormatRaw},
		{"unknown", []byte("hello"), "library.txt", FormatUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := detectFormat(tc.header, tc.path); got != tc.want {
				t.Errorf("detectFormat() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsLibraryFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"library.json", true},
		{"libs/Arcade.JSON", true},
		{"__MACOSX/libs/arcade.json", false},
		{"libs/._arcade.json", false},
		{"cover.png", false},
		{"library.json.bak", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isLibraryFile(tc.name); got != tc.want {
				t.Errorf("isLibraryFile(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestLimitedRead(t *testing.T) {
	data, err := limitedRead(bytes.NewReader(testLibrary))
	if err != nil {
		t.Fatalf("limitedRead failed: %v", err)
	}
	if !bytes.Equal(data, testLibrary) {
		t.Error("Data mismatch")
	}
}

func TestFormatIsArchive(t *testing.T) {
	archives := map[Format]bool{
		FormatUnknown: false,
		FormatRaw:     false,
		FormatZIP:     true,
		Format7z:      true,
		FormatGzip:    true,
		FormatRAR:     true,
	}
	for format, want := range archives {
		if got := format.IsArchive(); got != want {
			t.Errorf("%v.IsArchive() = %v, want %v", format, got, want)
		}
	}
}

func TestDetect(t *testing.T) {
	path := createTestFile(t, "library.json.gz", gzipBytes(t, testLibrary))
	format, err := Detect(path)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if format != FormatGzip {
		t.Errorf("Detect() = %v, want gzip", format)
	}

	if _, err := Detect(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}
