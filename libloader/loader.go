// Package libloader reads library files from disk, including libraries
// shipped inside compressed archives (ZIP, 7z, gzip, tar.gz, RAR).
package libloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Magic bytes for format detection
var (
	magicZIP    = []byte{0x50, 0x4B, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4B, 0x05, 0x06} // empty zip
	magic7z     = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}
	magicGzip   = []byte{0x1F, 0x8B}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21} // "Rar!"
)

// Maximum library size (64MB safety limit)
const maxLibrarySize = 64 * 1024 * 1024

// libraryExt is the extension of a library file inside an archive
const libraryExt = ".json"

// ErrNoLibraryFile is returned when no library file is found in an archive
var ErrNoLibraryFile = errors.New("no library file found in archive")

// ErrUnsupportedFormat is returned for unrecognized file formats
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrFileTooLarge is returned when extracted content exceeds size limit
var ErrFileTooLarge = errors.New("file exceeds maximum size limit")

// Format is the detected container format of a file
type Format int

const (
	FormatUnknown Format = iota
	FormatRaw
	FormatZIP
	Format7z
	FormatGzip
	FormatRAR
)

// String returns the display name of the format
func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "json"
	case FormatZIP:
		return "zip"
	case Format7z:
		return "7z"
	case FormatGzip:
		return "gzip"
	case FormatRAR:
		return "rar"
	default:
		return "unknown"
	}
}

// File is a library read by Load
type File struct {
	Data   []byte
	Name   string // base name of the library file, inside the archive if any
	Format Format
}

// IsArchive reports whether the format is a compressed archive
func (f Format) IsArchive() bool {
	switch f {
	case FormatZIP, Format7z, FormatGzip, FormatRAR:
		return true
	}
	return false
}

// Archived reports whether the library came out of an archive. An archived
// library cannot be saved back to its source path.
func (f *File) Archived() bool {
	return f.Format.IsArchive()
}

// Detect reports the format of the file at path from its magic bytes,
// falling back to the extension.
func Detect(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read file header: %w", err)
	}
	return detectFormat(header[:n], path), nil
}

// Load reads a library from a file path. It auto-detects compressed
// archives via magic bytes and extracts the first .json file. Plain files
// are read as-is when they carry the .json extension.
func Load(path string) (*File, error) {
	format, err := Detect(path)
	if err != nil {
		return nil, err
	}

	var data []byte
	var name string
	switch format {
	case FormatRaw:
		data, err = readRaw(path)
		name = filepath.Base(path)
	case FormatZIP:
		data, name, err = extractFromZIP(path)
	case Format7z:
		data, name, err = extractFrom7z(path)
	case FormatGzip:
		data, name, err = extractFromGzip(path)
	case FormatRAR:
		data, name, err = extractFromRAR(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}
	return &File{Data: data, Name: name, Format: format}, nil
}

// readRaw reads an uncompressed library file
func readRaw(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := limitedRead(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read library: %w", err)
	}
	return data, nil
}

// detectFormat determines the file format based on magic bytes and extension.
func detectFormat(header []byte, path string) Format {
	ext := strings.ToLower(filepath.Ext(path))

	// Check magic bytes first (more reliable)
	if len(header) >= 4 {
		if bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEnd) {
			return FormatZIP
		}
		if bytes.HasPrefix(header, magicRAR) {
			return FormatRAR
		}
	}
	if len(header) >= 6 && bytes.HasPrefix(header, magic7z) {
		return Format7z
	}
	if len(header) >= 2 && bytes.HasPrefix(header, magicGzip) {
		return FormatGzip
	}

	// Fall back to extension for archive formats
	switch ext {
	case ".zip":
		return FormatZIP
	case ".7z":
		return Format7z
	case ".gz", ".tgz":
		return FormatGzip
	case ".rar":
		return FormatRAR
	case libraryExt:
		return FormatRaw
	}
	return FormatUnknown
}

// isLibraryFile reports whether an archive entry looks like a library.
// macOS metadata entries (__MACOSX/, ._name) are skipped.
func isLibraryFile(name string) bool {
	name = filepath.ToSlash(name)
	if strings.HasPrefix(name, "__MACOSX/") || strings.HasPrefix(path.Base(name), "._") {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), libraryExt)
}

// limitedRead reads from r up to maxLibrarySize bytes, returning an error if exceeded
func limitedRead(r io.Reader) ([]byte, error) {
	lr := io.LimitReader(r, maxLibrarySize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if len(data) > maxLibrarySize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
