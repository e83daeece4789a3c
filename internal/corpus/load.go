package corpus

import (
	"bytes"
	"compress/bzip2"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zstd"

	"github.com/verte-zerg/tokitype/internal/model"
)

// ErrUnknownFormat is returned for corpus paths with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown corpus format")

// EmbeddedSource names the corpus compiled into the binary.
const EmbeddedSource = "embedded"

//go:embed data/words.toml
var embeddedWords []byte

type tomlFile struct {
	Words []model.WordRecord `toml:"words"`
}

// Load reads a corpus from path. An empty path selects the embedded corpus.
// Supported formats: .toml, .toml.bz2, .toml.zst and SQLite caches (.db, .sqlite).
func Load(ctx context.Context, path string) (*Corpus, error) {
	if path == "" {
		records, err := DecodeTOML(bytes.NewReader(embeddedWords))
		if err != nil {
			return nil, fmt.Errorf("failed to decode embedded corpus: %w", err)
		}
		return New(EmbeddedSource, records), nil
	}

	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return loadDB(ctx, path)
	case strings.HasSuffix(lower, ".toml"),
		strings.HasSuffix(lower, ".toml.bz2"),
		strings.HasSuffix(lower, ".toml.zst"):
		return loadTOMLFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func loadTOMLFile(path string) (*Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only corpus.
			_ = cerr
		}
	}()

	var r io.Reader = file
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".bz2"):
		r = bzip2.NewReader(file)
	case strings.HasSuffix(lower, ".zst"):
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	records, err := DecodeTOML(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode corpus %s: %w", path, err)
	}
	return New(path, records), nil
}

// DecodeTOML parses a `[[words]]` TOML document into records.
func DecodeTOML(r io.Reader) ([]model.WordRecord, error) {
	var doc tomlFile
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	if len(doc.Words) == 0 {
		return nil, ErrEmpty
	}
	return doc.Words, nil
}
