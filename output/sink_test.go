package output

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontogen/ontology"
)

func TestCleanRelPath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "nao/tag.h", want: "nao/tag.h"},
		{in: "nao/./tag.h", want: "nao/tag.h"},
		{in: "nao/../nie/file.h", want: "nie/file.h"},
		{in: "", wantErr: true},
		{in: "/etc/passwd", wantErr: true},
		{in: "../outside.h", wantErr: true},
		{in: "nao/../../outside.h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := cleanRelPath(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirSink_Write(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")
	sink := NewDirSink(root, nil)
	ctx := context.Background()

	require.NoError(t, sink.Write(ctx, "nao/tag.h", []byte("first")))
	require.NoError(t, sink.Write(ctx, "nao/party.h", []byte("second")), "existing directory is not an error")
	require.NoError(t, sink.Write(ctx, "nao/tag.h", []byte("third")), "files are overwritten")

	data, err := os.ReadFile(filepath.Join(root, "nao", "tag.h"))
	require.NoError(t, err)
	assert.Equal(t, "third", string(data))

	assert.Equal(t, int64(3), sink.UnitsWritten())
	assert.Equal(t, int64(0), sink.WriteErrors())
	assert.Equal(t, root, sink.Root())
}

func TestDirSink_WriteFailure(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "nao")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	sink := NewDirSink(root, nil)
	err := sink.Write(context.Background(), "nao/tag.h", []byte("x"))

	require.Error(t, err)
	assert.True(t, ontology.IsIOFailure(err))
	assert.Equal(t, int64(1), sink.WriteErrors())
}

func TestDirSink_RejectsEscapingPath(t *testing.T) {
	sink := NewDirSink(t.TempDir(), nil)
	err := sink.Write(context.Background(), "../tag.h", []byte("x"))

	assert.True(t, ontology.IsIOFailure(err))
}

func TestDirSink_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := NewDirSink(t.TempDir(), nil)
	assert.ErrorIs(t, sink.Write(ctx, "nao/tag.h", []byte("x")), context.Canceled)
	assert.Equal(t, int64(0), sink.UnitsWritten())
}

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()
	ctx := context.Background()

	content := []byte("header")
	require.NoError(t, sink.Write(ctx, "nie/file.h", content))
	require.NoError(t, sink.Write(ctx, "nao/tag.h", []byte("tag")))

	content[0] = 'X'

	got, ok := sink.Get("nie/file.h")
	require.True(t, ok)
	assert.Equal(t, "header", string(got), "content is copied")

	_, ok = sink.Get("missing.h")
	assert.False(t, ok)

	assert.Equal(t, []string{"nao/tag.h", "nie/file.h"}, sink.Paths())
	assert.Equal(t, 2, sink.Len())

	assert.True(t, ontology.IsIOFailure(sink.Write(ctx, "/abs.h", nil)))
}
