package sources

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"strconv"

	"dns-insights/internal/models"

	_ "modernc.org/sqlite"
)

const (
	probeSampleRows = 32

	// Chunk size bounds. The advisory size is a performance hint only; any
	// positive value (or unbounded) must yield identical concatenated reads.
	minChunkSize     = 1024
	maxChunkSize     = 4_000_000
	defaultChunkSize = 500_000

	// Fixed per-row overhead of a QueryRecord before variable-length fields.
	rowBaseFootprint = 96
)

// ProbeInfo describes a source database: the advisory chunk size for reading
// it and the true overall timestamp range it covers (not just any requested
// window). HasRows is false for an empty database, in which case the
// timestamps are meaningless.
type ProbeInfo struct {
	ChunkSize       int
	HasRows         bool
	OldestTimestamp int64
	LatestTimestamp int64
}

//go:generate mockgen -source=source_store.go -destination=./mocks/source_store_mock.go -package=mocks
type SourceStore interface {
	// Probe samples the database to size chunks and find its timestamp range.
	Probe(ctx context.Context) (*ProbeInfo, error)
	// Read starts a fresh forward-only chunked read of rows with
	// startTS <= timestamp < endTS. chunkSize <= 0 reads unbounded.
	Read(startTS, endTS int64, chunkSize int) *ChunkReader
	Close() error
}

type sqliteSource struct {
	db   *sql.DB
	path string
}

// Open opens an existing query-log database read-only. A missing or
// unreadable path is an error; sources are inputs, never created here.
func Open(path string) (SourceStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("source database %q not found: %w", path, err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open source database %q: %w", path, err)
	}

	return &sqliteSource{db: db, path: path}, nil
}

func (s *sqliteSource) Close() error {
	return s.db.Close()
}

func (s *sqliteSource) Probe(ctx context.Context) (*ProbeInfo, error) {
	info := &ProbeInfo{ChunkSize: defaultChunkSize}

	var oldest, latest sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MIN(timestamp), MAX(timestamp) FROM queries`).
		Scan(&oldest, &latest)
	if err != nil {
		return nil, fmt.Errorf("failed to probe timestamp range of %q: %w", s.path, err)
	}
	if oldest.Valid && latest.Valid {
		info.HasRows = true
		info.OldestTimestamp = oldest.Int64
		info.LatestTimestamp = latest.Int64
	}

	footprint, err := s.sampleRowFootprint(ctx)
	if err != nil {
		return nil, err
	}
	info.ChunkSize = chunkSizeFor(availableMemoryBytes(), footprint)

	return info, nil
}

// sampleRowFootprint estimates the in-memory bytes per row from a small
// sample. Empty databases fall back to the fixed base footprint.
func (s *sqliteSource) sampleRowFootprint(ctx context.Context) (int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp, status, domain, client, reply_time FROM queries LIMIT ?`,
		probeSampleRows)
	if err != nil {
		return 0, fmt.Errorf("failed to sample rows of %q: %w", s.path, err)
	}
	defer rows.Close()

	total, n := 0, 0
	for rows.Next() {
		rec, err := scanQueryRecord(rows)
		if err != nil {
			return 0, fmt.Errorf("failed to scan sample row of %q: %w", s.path, err)
		}
		total += rowBaseFootprint + len(rec.Domain) + len(rec.Client)
		n++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to sample rows of %q: %w", s.path, err)
	}
	if n == 0 {
		return rowBaseFootprint, nil
	}
	return total / n, nil
}

// chunkSizeFor divides half of the available memory by the per-row footprint.
// Unknown memory yields the default; results are clamped to sane bounds.
func chunkSizeFor(availableBytes uint64, rowFootprint int) int {
	if availableBytes == 0 || rowFootprint <= 0 {
		return defaultChunkSize
	}
	size := int(availableBytes / 2 / uint64(rowFootprint))
	if size < minChunkSize {
		return minChunkSize
	}
	if size > maxChunkSize {
		return maxChunkSize
	}
	return size
}

func (s *sqliteSource) Read(startTS, endTS int64, chunkSize int) *ChunkReader {
	return &ChunkReader{
		db:        s.db,
		path:      s.path,
		startTS:   startTS,
		endTS:     endTS,
		chunkSize: chunkSize,
		lastTS:    math.MinInt64,
		lastID:    math.MinInt64,
	}
}

// ChunkReader is a finite, forward-only stream of ordered row chunks for one
// source and window. It is not restartable mid-stream; a fresh Read call on
// the source starts over from the beginning of the window.
type ChunkReader struct {
	db        *sql.DB
	path      string
	startTS   int64
	endTS     int64
	chunkSize int

	lastTS    int64
	lastID    int64
	exhausted bool
}

// Next returns the next chunk in (timestamp, id) order, or nil once the
// window is exhausted. Chunks hold at most the advisory chunk size rows;
// a non-positive size reads the whole window in one chunk.
func (r *ChunkReader) Next(ctx context.Context) ([]models.QueryRecord, error) {
	if r.exhausted {
		return nil, nil
	}

	limit := r.chunkSize
	if limit <= 0 {
		limit = -1 // no LIMIT in sqlite
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, timestamp, status, domain, client, reply_time
		FROM queries
		WHERE timestamp >= ? AND timestamp < ?
		  AND (timestamp > ? OR (timestamp = ? AND id > ?))
		ORDER BY timestamp, id
		LIMIT ?`,
		r.startTS, r.endTS, r.lastTS, r.lastTS, r.lastID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read chunk from %q: %w", r.path, err)
	}
	defer rows.Close()

	var chunk []models.QueryRecord
	for rows.Next() {
		rec, err := scanQueryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row from %q: %w", r.path, err)
		}
		chunk = append(chunk, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chunk from %q: %w", r.path, err)
	}

	if len(chunk) == 0 {
		r.exhausted = true
		return nil, nil
	}

	last := chunk[len(chunk)-1]
	r.lastTS = last.Timestamp
	r.lastID = last.ID
	if r.chunkSize <= 0 || len(chunk) < r.chunkSize {
		r.exhausted = true
	}
	return chunk, nil
}

// scanQueryRecord scans the canonical row shape. client and reply_time are
// nullable, and reply_time tolerates non-numeric values (they become missing
// rather than zero, so latency aggregates are not skewed).
func scanQueryRecord(rows *sql.Rows) (models.QueryRecord, error) {
	var rec models.QueryRecord
	var client sql.NullString
	var reply any
	if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Status, &rec.Domain, &client, &reply); err != nil {
		return models.QueryRecord{}, err
	}
	if client.Valid {
		rec.Client = client.String
	}
	rec.ReplyTime = coerceReplyTime(reply)
	return rec, nil
}

func coerceReplyTime(v any) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return &t
	case int64:
		f := float64(t)
		return &f
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil
		}
		return &f
	case []byte:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}
