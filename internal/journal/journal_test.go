package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/bqsolo/internal/data"
	"github.com/udisondev/bqsolo/internal/protocol"
	"github.com/udisondev/bqsolo/internal/testutil"
)

func fixedClock(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func TestWriter_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 5, 1, 13, 20, 0, 0, time.UTC)
	w := NewWriter(dir)
	w.now = fixedClock(&now)

	require.NoError(t, w.Write(SourceReply, []protocol.Event{protocol.NewMove(1, 4, 5)}))
	require.NoError(t, w.Write(SourcePush, []protocol.Event{
		protocol.NewAttack(3, 1),
		protocol.NewDrop(3, 6, data.KindFlask, []uint32{1}),
	}))
	require.NoError(t, w.Close())

	path := filepath.Join(dir, "events-2024-05-01-13.jsonl.zst")
	assert.Equal(t, path, w.PathForHour(now))

	entries, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, SourceReply, entries[0].Source)
	assert.Equal(t, "2024-05-01T13:20:00Z", entries[0].TS)
	assert.Equal(t, [][]any{{float64(4), float64(1), float64(4), float64(5)}}, entries[0].Events)

	assert.Equal(t, SourcePush, entries[1].Source)
	assert.Equal(t, []any{float64(14), float64(3), float64(6), float64(35), []any{float64(1)}}, entries[1].Events[1])
}

func TestWriter_RotatesHourly(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 5, 1, 13, 59, 0, 0, time.UTC)
	w := NewWriter(dir)
	w.now = fixedClock(&now)

	require.NoError(t, w.Write(SourcePush, []protocol.Event{protocol.NewHealth(90)}))
	now = now.Add(2 * time.Minute)
	require.NoError(t, w.Write(SourcePush, []protocol.Event{protocol.NewHealth(80)}))
	require.NoError(t, w.Close())

	first, err := ReadFile(filepath.Join(dir, "events-2024-05-01-13.jsonl.zst"))
	require.NoError(t, err)
	second, err := ReadFile(filepath.Join(dir, "events-2024-05-01-14.jsonl.zst"))
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestWriter_AppendsAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		w := NewWriter(dir)
		w.now = fixedClock(&now)
		require.NoError(t, w.Write(SourceReply, []protocol.Event{protocol.NewChat(1, "hi")}))
		require.NoError(t, w.Close())
	}

	entries, err := ReadFile(filepath.Join(dir, "events-2024-05-01-13.jsonl.zst"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSink_RecordsAndForwards(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	w := NewWriter(dir)
	w.now = fixedClock(&now)

	next := testutil.NewRecordingSink()
	s := NewSink(w, SourcePush, next)
	batch := []protocol.Event{protocol.NewKill(data.KindRat)}
	s.Push(batch)
	require.NoError(t, w.Close())

	assert.Equal(t, [][]protocol.Event{batch}, next.Batches())

	entries, err := ReadFile(w.PathForHour(now))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, SourcePush, entries[0].Source)
}
