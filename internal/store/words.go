// Package store holds the read-mostly word table backed by a CSV file.
package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/d-chambers/prolix/internal/models"
	"go.uber.org/zap"
)

const (
	colWord       = "word"
	colDefinition = "definition"
)

// Words caches the word table in memory and re-reads the backing CSV only
// when its modification time advances past the last load.
type Words struct {
	path string
	log  *zap.Logger

	mu       sync.Mutex
	entries  []models.WordEntry
	byWord   map[string]models.WordEntry
	loaded   bool
	loadedAt time.Time
}

func NewWords(path string, log *zap.Logger) *Words {
	return &Words{path: path, log: log}
}

// All returns every loaded entry, sorted by word.
func (w *Words) All(ctx context.Context) ([]models.WordEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensure(); err != nil {
		return nil, err
	}
	out := make([]models.WordEntry, len(w.entries))
	copy(out, w.entries)
	return out, nil
}

// Lookup finds a single entry, returning models.ErrWordNotFound when the
// word is absent.
func (w *Words) Lookup(ctx context.Context, word string) (models.WordEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensure(); err != nil {
		return models.WordEntry{}, err
	}
	entry, ok := w.byWord[word]
	if !ok {
		return models.WordEntry{}, fmt.Errorf("%q: %w", word, models.ErrWordNotFound)
	}
	return entry, nil
}

// Random returns a uniformly sampled entry.
func (w *Words) Random(ctx context.Context) (models.WordEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensure(); err != nil {
		return models.WordEntry{}, err
	}
	if len(w.entries) == 0 {
		return models.WordEntry{}, models.ErrEmptyStore
	}
	return w.entries[rand.Intn(len(w.entries))], nil
}

// Append merges new entries into the backing file, deduplicating against
// existing words by key and dropping entries with empty definitions. It
// returns the number of entries actually written.
func (w *Words) Append(ctx context.Context, entries []models.WordEntry) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensure(); err != nil {
		return 0, err
	}

	merged := make([]models.WordEntry, len(w.entries))
	copy(merged, w.entries)

	added := 0
	for _, entry := range entries {
		if entry.Word == "" || entry.Definition.Empty() {
			continue
		}
		if _, exists := w.byWord[entry.Word]; exists {
			continue
		}
		merged = append(merged, entry)
		w.byWord[entry.Word] = entry
		added++
	}
	if added == 0 {
		return 0, nil
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Word < merged[j].Word })

	if err := w.write(merged); err != nil {
		return 0, err
	}
	// force a fresh read next time; the file just changed under us
	w.loaded = false
	return added, nil
}

// ensure loads the table when it has never been read or when the backing
// file changed since the last read. Caller holds the mutex.
func (w *Words) ensure() error {
	info, err := os.Stat(w.path)
	if errors.Is(err, os.ErrNotExist) {
		// first run: no word file yet, start with an empty store
		w.entries = nil
		w.byWord = map[string]models.WordEntry{}
		w.loaded = true
		w.loadedAt = time.Time{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat word file: %w", err)
	}
	if w.loaded && !info.ModTime().After(w.loadedAt) {
		return nil
	}
	return w.load(info.ModTime())
}

func (w *Words) load(modTime time.Time) error {
	fi, err := os.Open(w.path)
	if err != nil {
		return fmt.Errorf("open word file: %w", err)
	}
	defer fi.Close()

	reader := csv.NewReader(fi)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("read word file: %w", err)
	}
	if len(records) == 0 {
		w.entries = nil
		w.byWord = map[string]models.WordEntry{}
		w.loaded = true
		w.loadedAt = modTime
		return nil
	}

	wordCol, defCol := -1, -1
	for i, name := range records[0] {
		switch name {
		case colWord:
			wordCol = i
		case colDefinition:
			defCol = i
		}
	}
	if wordCol < 0 || defCol < 0 {
		return fmt.Errorf("word file %s: missing %q or %q column", w.path, colWord, colDefinition)
	}

	entries := make([]models.WordEntry, 0, len(records)-1)
	byWord := make(map[string]models.WordEntry, len(records)-1)
	dropped := 0
	for _, row := range records[1:] {
		if len(row) <= wordCol || len(row) <= defCol {
			dropped++
			continue
		}
		word := row[wordCol]
		def, err := models.ParseDefinition(row[defCol])
		if err != nil {
			return err
		}
		if word == "" || def.Empty() {
			dropped++
			continue
		}
		if _, exists := byWord[word]; exists {
			continue
		}
		entry := models.WordEntry{Word: word, Definition: def}
		byWord[word] = entry
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Word < entries[j].Word })

	if dropped > 0 {
		w.log.Debug("dropped rows without definitions",
			zap.Int("dropped", dropped), zap.String("path", w.path))
	}

	w.entries = entries
	w.byWord = byWord
	w.loaded = true
	w.loadedAt = modTime
	return nil
}

// write replaces the backing file atomically via a temp file rename.
func (w *Words) write(entries []models.WordEntry) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create word file dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(w.path), ".words-*.csv")
	if err != nil {
		return fmt.Errorf("create temp word file: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write([]string{colWord, colDefinition}); err != nil {
		tmp.Close()
		return fmt.Errorf("write word file header: %w", err)
	}
	for _, entry := range entries {
		encoded, err := entry.Definition.Encode()
		if err != nil {
			tmp.Close()
			return err
		}
		if err := writer.Write([]string{entry.Word, encoded}); err != nil {
			tmp.Close()
			return fmt.Errorf("write word row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush word file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp word file: %w", err)
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return fmt.Errorf("replace word file: %w", err)
	}
	return nil
}
