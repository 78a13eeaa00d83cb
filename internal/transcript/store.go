package transcript

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

// Stage output files, one record-per-line JSONL file per stage per run.
const (
	FileSpans            = "spans.jsonl"
	FileParagraphs       = "paragraphs.jsonl"
	FileChapters         = "chapters.jsonl"
	FileMicroSummaries   = "micro_summaries.jsonl"
	FileChapterSummaries = "chapter_summaries.jsonl"
	FileGlobalSummary    = "global_summary.jsonl"
	FileStyledSummaries  = "styled_summaries.jsonl"
	FileAnnotations      = "annotations.jsonl"
	FileNotes            = "notes.docx"
	FileTranscript       = "transcript.docx"
)

// Store manages per-run output directories under a single root. Each run is
// isolated in its own ULID-named directory so concurrent runs never share
// mutable state.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store root: %w", err)
	}
	return &Store{root: dir}, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// NewRun allocates a fresh run directory.
func (s *Store) NewRun() (*Run, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}
	dir := filepath.Join(s.root, id.String())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}
	return &Run{id: id.String(), dir: dir}, nil
}

// OpenRun opens an existing run directory by id.
func (s *Store) OpenRun(id string) (*Run, error) {
	dir := filepath.Join(s.root, id)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open run %s: %w", id, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open run %s: not a directory", id)
	}
	return &Run{id: id, dir: dir}, nil
}

// Run is one pipeline run's isolated output location.
type Run struct {
	id  string
	dir string
}

// ID returns the run's ULID.
func (r *Run) ID() string { return r.id }

// Dir returns the run's directory.
func (r *Run) Dir() string { return r.dir }

// Path returns the absolute path of a stage file within the run.
func (r *Run) Path(name string) string { return filepath.Join(r.dir, name) }

// Has reports whether a stage file has been written for this run.
func (r *Run) Has(name string) bool {
	_, err := os.Stat(r.Path(name))
	return err == nil
}

// WriteRecords persists records as one JSON object per line. The file is
// written to a temp name and renamed into place so a crash mid-write never
// leaves a partially-visible stage output.
func WriteRecords[T any](r *Run, name string, records []T) error {
	tmp := r.Path(name + ".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i, rec := range records {
		if err := enc.Encode(rec); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("encode %s record %d: %w", name, i, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("flush %s: %w", name, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", name, err)
	}

	if err := os.Rename(tmp, r.Path(name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("publish %s: %w", name, err)
	}
	return nil
}

// ReadRecords loads a stage file written by WriteRecords. Blank lines are
// ignored; lines that fail to decode are skipped and counted so callers can
// warn without aborting the stage.
func ReadRecords[T any](r *Run, name string) (records []T, skipped int, err error) {
	f, err := os.Open(r.Path(name))
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec T
		if err := json.Unmarshal(line, &rec); err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("scan %s: %w", name, err)
	}
	return records, skipped, nil
}
