package zipkit

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Name: "a.txt", Content: "hi"},
		{Name: "b.txt", Content: "bye"},
	}

	data, err := Build(context.Background(), entries)
	require.NoError(t, err)

	got := readArchive(t, data)
	require.Len(t, got, 2)
	assert.Equal(t, entries, got)
}

func TestBuildLayout(t *testing.T) {
	t.Parallel()

	// Local blocks: 30+5+2 = 37 and 30+5+3 = 38. Central entries: 46+5 each.
	entries := []Entry{
		{Name: "a.txt", Content: "hi"},
		{Name: "b.txt", Content: "bye"},
	}

	data, err := Build(context.Background(), entries)
	require.NoError(t, err)

	// Local file headers sit at offsets 0 and 37.
	sig := []byte{0x50, 0x4B, 0x03, 0x04}
	assert.Equal(t, sig, data[0:4])
	assert.Equal(t, sig, data[37:41])

	eocd := data[len(data)-22:]
	require.Equal(t, []byte{0x50, 0x4B, 0x05, 0x06}, eocd[0:4])
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(eocd[8:10]), "entries on disk")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(eocd[10:12]), "total entries")
	assert.Equal(t, uint32(51+51), binary.LittleEndian.Uint32(eocd[12:16]), "central directory size")
	assert.Equal(t, uint32(37+38), binary.LittleEndian.Uint32(eocd[16:20]), "central directory offset")

	// The archive is exactly locals + central directory + trailer.
	assert.Len(t, data, 37+38+51+51+22)
}

func TestBuildSingleEntryBoundary(t *testing.T) {
	t.Parallel()

	data, err := Build(context.Background(), []Entry{{Name: "a", Content: "b"}})
	require.NoError(t, err)

	// 30+1+1 local, 46+1 central, 22 trailer.
	assert.Len(t, data, 101)
	assert.Equal(t, []Entry{{Name: "a", Content: "b"}}, readArchive(t, data))
}

func TestBuildNoEntries(t *testing.T) {
	t.Parallel()

	data, err := Build(context.Background(), nil)
	require.NoError(t, err)

	// Just the end-of-central-directory record.
	assert.Len(t, data, 22)
	assert.Empty(t, readArchive(t, data))
}

func TestBuildUnicode(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Name: "héllo ✓.txt", Content: "grüße, 世界, 🙂"},
	}

	data, err := Build(context.Background(), entries)
	require.NoError(t, err)
	assert.Equal(t, entries, readArchive(t, data))
}

func TestBuildDeterministic(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Name: "a.txt", Content: "hi"},
		{Name: "b.txt", Content: "bye"},
	}
	mod := time.Date(2024, time.November, 7, 13, 42, 20, 0, time.UTC)

	first, err := Build(context.Background(), entries, BuildWithModTime(mod))
	require.NoError(t, err)
	second, err := Build(context.Background(), entries, BuildWithModTime(mod))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildModTime(t *testing.T) {
	t.Parallel()

	// Even seconds only; DOS timestamps have 2-second resolution.
	mod := time.Date(2024, time.November, 7, 13, 42, 20, 0, time.UTC)

	data, err := Build(context.Background(), []Entry{{Name: "a", Content: "b"}}, BuildWithModTime(mod))
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.True(t, mod.Equal(zr.File[0].Modified.UTC()), "got %v", zr.File[0].Modified)
}

func TestBuildWorkersMatchSerial(t *testing.T) {
	t.Parallel()

	entries := make([]Entry, 100)
	for i := range entries {
		entries[i] = Entry{
			Name:    "file-" + strings.Repeat("x", i%7) + ".txt",
			Content: strings.Repeat("content ", i+1),
		}
	}
	mod := time.Date(2024, time.November, 7, 13, 42, 20, 0, time.UTC)

	serial, err := Build(context.Background(), entries, BuildWithModTime(mod))
	require.NoError(t, err)
	parallel, err := Build(context.Background(), entries, BuildWithModTime(mod), BuildWithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestBuildUnsupportedCharacter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []Entry
	}{
		{"bad name", []Entry{{Name: "a\xffb.txt", Content: "hi"}}},
		{"bad content", []Entry{{Name: "a.txt", Content: "he\xc3"}}},
		{"second entry bad", []Entry{
			{Name: "ok.txt", Content: "fine"},
			{Name: "bad.txt", Content: "\xed\xa0\x80"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Build(context.Background(), tt.entries)
			require.ErrorIs(t, err, ErrUnsupportedCharacter)
			assert.Nil(t, data)
		})
	}
}

func TestBuildFieldOverflow(t *testing.T) {
	t.Parallel()

	data, err := Build(context.Background(), []Entry{
		{Name: strings.Repeat("n", 1<<16), Content: "hi"},
	})
	require.ErrorIs(t, err, ErrFieldOverflow)
	assert.Nil(t, data)
}

func TestBuildCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data, err := Build(ctx, []Entry{{Name: "a", Content: "b"}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, data)
}

// readArchive decodes data with the stdlib ZIP reader, which also verifies
// each entry's CRC-32 on read.
func readArchive(t *testing.T, data []byte) []Entry {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries = append(entries, Entry{Name: f.Name, Content: string(content)})
	}
	return entries
}
