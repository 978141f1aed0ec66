package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/Neumenon/lexipack/lexipack"
)

func TestLoadReader(t *testing.T) {
	input := strings.Join([]string{
		"10 hello",
		"11 World extra fields ignored",
		"",                // blank line skipped
		"justoneword",     // fewer than two fields skipped
		"notanumber word", // unparseable id skipped
		"12\tindented\twith\ttabs",
	}, "\n")

	mem := NewMemStore()
	n, err := LoadReader(mem, strings.NewReader(input), lexipack.EN)
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	if n != 3 {
		t.Errorf("loaded %d entries, want 3", n)
	}

	got, err := mem.LookupWords([]string{"hello", "world", "indented"}, lexipack.EN)
	if err != nil {
		t.Fatalf("LookupWords failed: %v", err)
	}
	want := map[string]uint32{"hello": 10, "world": 11, "indented": 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LookupWords = %v, want %v", got, want)
	}
}

func TestLoadFilePlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.txt")
	if err := os.WriteFile(path, []byte("1 one\n2 two\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	mem := NewMemStore()
	n, err := LoadFile(mem, path, lexipack.EN)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if n != 2 {
		t.Errorf("loaded %d entries, want 2", n)
	}
}

func TestLoadFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.txt.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("1 one\n2 two\n3 three\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	mem := NewMemStore()
	n, err := LoadFile(mem, path, lexipack.EN)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if n != 3 {
		t.Errorf("loaded %d entries, want 3", n)
	}

	got, err := mem.LookupIDs([]uint32{3}, lexipack.EN)
	if err != nil {
		t.Fatalf("LookupIDs failed: %v", err)
	}
	if got[3] != "three" {
		t.Errorf("id 3 = %q, want %q", got[3], "three")
	}
}

func TestLoadFileIntoDB(t *testing.T) {
	dir := t.TempDir()
	wordlist := filepath.Join(dir, "en.txt")
	if err := os.WriteFile(wordlist, []byte("10 hello\n11 world\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	db, err := Open(filepath.Join(dir, "dict.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	n, err := LoadFile(db, wordlist, lexipack.EN)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if n != 2 {
		t.Errorf("loaded %d entries, want 2", n)
	}

	got, err := db.LookupWords([]string{"hello", "world"}, lexipack.EN)
	if err != nil {
		t.Fatalf("LookupWords failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("LookupWords = %v, want both entries", got)
	}
}
