package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/Neumenon/lexipack/lexipack"
)

// Loadable is anything wordlists can be loaded into. DB, MemStore and
// Cached all satisfy it.
type Loadable interface {
	Load(entries []lexipack.Entry) error
}

// Entries loaded per Load call when ingesting a file.
const loadBatchSize = 10_000

// LoadFile loads a wordlist file into dst. Files ending in ".gz" are
// decompressed transparently. Returns the number of entries loaded.
func LoadFile(dst Loadable, path string, lang lexipack.Language) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("store: open wordlist: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return 0, fmt.Errorf("store: gunzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	return LoadReader(dst, r, lang)
}

// LoadReader parses wordlist lines from r and loads them into dst.
//
// Each line is whitespace-separated: an unsigned integer id, the word, and
// optional extra fields (ignored). Lines with fewer than two fields, or a
// first field that is not an unsigned integer, are skipped. Words are
// lowercased on ingestion.
func LoadReader(dst Loadable, r io.Reader, lang lexipack.Language) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	batch := make([]lexipack.Entry, 0, loadBatchSize)
	loaded := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := dst.Load(batch); err != nil {
			return err
		}
		loaded += len(batch)
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		id, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			continue
		}
		batch = append(batch, lexipack.Entry{
			ID:   uint32(id),
			Word: strings.ToLower(fields[1]),
			Lang: lang,
		})
		if len(batch) == loadBatchSize {
			if err := flush(); err != nil {
				return loaded, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("store: read wordlist: %w", err)
	}
	if err := flush(); err != nil {
		return loaded, err
	}

	return loaded, nil
}
