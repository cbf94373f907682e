package sources

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"dns-insights/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureRow struct {
	timestamp int64
	status    int
	domain    string
	client    any
	reply     any
}

func createFixtureDB(t *testing.T, rows []fixtureRow) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "queries.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE queries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp INTEGER NOT NULL,
		status INTEGER NOT NULL,
		domain TEXT NOT NULL,
		client TEXT,
		reply_time REAL
	)`)
	require.NoError(t, err)

	for _, row := range rows {
		_, err = db.Exec(
			`INSERT INTO queries (timestamp, status, domain, client, reply_time) VALUES (?, ?, ?, ?, ?)`,
			row.timestamp, row.status, row.domain, row.client, row.reply)
		require.NoError(t, err)
	}
	return path
}

func defaultFixtureRows(n int) []fixtureRow {
	rows := make([]fixtureRow, 0, n)
	for i := 0; i < n; i++ {
		status := 2
		if i%3 == 0 {
			status = 1
		}
		rows = append(rows, fixtureRow{
			timestamp: int64(1000 + i*10),
			status:    status,
			domain:    fmt.Sprintf("host-%d.example.com", i%7),
			client:    fmt.Sprintf("10.0.0.%d", i%4),
			reply:     0.01,
		})
	}
	return rows
}

func TestOpen_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist.db"))
	assert.Error(t, err)
}

func TestProbe_TimestampBounds(t *testing.T) {
	t.Parallel()

	path := createFixtureDB(t, defaultFixtureRows(50))
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	info, err := store.Probe(context.Background())
	require.NoError(t, err)

	assert.True(t, info.HasRows)
	assert.Equal(t, int64(1000), info.OldestTimestamp)
	assert.Equal(t, int64(1000+49*10), info.LatestTimestamp)
	assert.Positive(t, info.ChunkSize)
}

func TestProbe_EmptyDatabase(t *testing.T) {
	t.Parallel()

	path := createFixtureDB(t, nil)
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	info, err := store.Probe(context.Background())
	require.NoError(t, err)

	assert.False(t, info.HasRows)
	assert.Positive(t, info.ChunkSize)
}

func TestChunkReader_WindowIsEndExclusive(t *testing.T) {
	t.Parallel()

	path := createFixtureDB(t, []fixtureRow{
		{timestamp: 100, status: 2, domain: "a.example.com", client: "10.0.0.1"},
		{timestamp: 200, status: 2, domain: "b.example.com", client: "10.0.0.1"},
		{timestamp: 300, status: 2, domain: "c.example.com", client: "10.0.0.1"},
	})
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	records := readAll(t, store, 100, 300, 0)
	require.Len(t, records, 2)
	assert.Equal(t, int64(100), records[0].Timestamp) // start inclusive
	assert.Equal(t, int64(200), records[1].Timestamp) // end excluded
}

func TestChunkReader_ChunkSizeInvariance(t *testing.T) {
	t.Parallel()

	path := createFixtureDB(t, defaultFixtureRows(100))
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	unbounded := readAll(t, store, 0, 10_000, 0)
	require.Len(t, unbounded, 100)

	for _, chunkSize := range []int{1, 7, 50, 5000} {
		chunked := readAll(t, store, 0, 10_000, chunkSize)
		assert.Equal(t, unbounded, chunked, "chunk size %d", chunkSize)
	}
}

func TestChunkReader_ExhaustionIsSticky(t *testing.T) {
	t.Parallel()

	path := createFixtureDB(t, defaultFixtureRows(3))
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	reader := store.Read(0, 10_000, 2)
	ctx := context.Background()

	chunk, err := reader.Next(ctx)
	require.NoError(t, err)
	require.Len(t, chunk, 2)

	chunk, err = reader.Next(ctx)
	require.NoError(t, err)
	require.Len(t, chunk, 1)

	for i := 0; i < 3; i++ {
		chunk, err = reader.Next(ctx)
		require.NoError(t, err)
		assert.Nil(t, chunk)
	}
}

func TestChunkReader_NullAndMalformedColumns(t *testing.T) {
	t.Parallel()

	path := createFixtureDB(t, []fixtureRow{
		{timestamp: 100, status: 2, domain: "a.example.com", client: nil, reply: nil},
		{timestamp: 200, status: 2, domain: "b.example.com", client: "10.0.0.1", reply: "0.25"},
		{timestamp: 300, status: 2, domain: "c.example.com", client: "10.0.0.1", reply: "garbage"},
	})
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	records := readAll(t, store, 0, 10_000, 0)
	require.Len(t, records, 3)

	assert.Equal(t, "", records[0].Client)
	assert.Nil(t, records[0].ReplyTime)

	require.NotNil(t, records[1].ReplyTime)
	assert.InDelta(t, 0.25, *records[1].ReplyTime, 1e-9)

	// Unparsable reply times become missing, never zero.
	assert.Nil(t, records[2].ReplyTime)
}

func TestChunkSizeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		availableBytes uint64
		rowFootprint   int
		want           int
	}{
		{
			name:           "unknown memory yields default",
			availableBytes: 0,
			rowFootprint:   128,
			want:           defaultChunkSize,
		},
		{
			name:           "half of available divided by footprint",
			availableBytes: 1 << 28, // 256 MiB
			rowFootprint:   128,
			want:           1 << 28 / 2 / 128, // 1,048,576
		},
		{
			name:           "clamped to minimum",
			availableBytes: 1 << 18,
			rowFootprint:   4096,
			want:           minChunkSize,
		},
		{
			name:           "clamped to maximum",
			availableBytes: 1 << 44,
			rowFootprint:   64,
			want:           maxChunkSize,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, chunkSizeFor(tt.availableBytes, tt.rowFootprint))
		})
	}
}

func readAll(t *testing.T, store SourceStore, startTS, endTS int64, chunkSize int) []models.QueryRecord {
	t.Helper()

	var all []models.QueryRecord
	reader := store.Read(startTS, endTS, chunkSize)
	for {
		chunk, err := reader.Next(context.Background())
		require.NoError(t, err)
		if chunk == nil {
			return all
		}
		all = append(all, chunk...)
	}
}
