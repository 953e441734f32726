package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
    "server": {"mode": "cn", "host": "127.0.0.1", "port": 8080},
    "version": {"android": {"resVersion": "r1", "clientVersion": "c1"}},
    "assets": {"autoUpdate": false}
}`

func newTestDocumentStore(t *testing.T, content string) (DocumentStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return NewDocumentFileStorage(path, logger.Nop()), path
}

func TestDocumentFileStorage_Read(t *testing.T) {
	s, _ := newTestDocumentStore(t, sampleDocument)

	doc, err := s.Read(context.Background())

	require.NoError(t, err)
	mode, ok := doc.Mode()
	assert.True(t, ok)
	assert.Equal(t, models.ModeCN, mode)
	assert.Equal(t, "r1", doc.Lookup("version", "android", "resVersion").String())
}

func TestDocumentFileStorage_ReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "missing file", content: "", wantErr: ErrDocumentNotFound},
		{name: "malformed", content: `{"server": `, wantErr: ErrMalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestDocumentStore(t, tt.content)

			_, err := s.Read(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDocumentFileStorage_WriteFormat(t *testing.T) {
	s, path := newTestDocumentStore(t, sampleDocument)
	ctx := context.Background()

	doc, err := models.NewDocument([]byte(`{"b":1,"a":{"y":true,"x":[1,2]}}`))
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "{\n    \"a\": {\n        \"x\": [\n            1,\n            2\n        ],\n        \"y\": true\n    },\n    \"b\": 1\n}\n"
	assert.Equal(t, want, string(data))

	require.NoError(t, s.Write(ctx, doc))
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestDocumentFileStorage_WriteArraysOnePerLine(t *testing.T) {
	s, path := newTestDocumentStore(t, sampleDocument)

	doc, err := models.NewDocument([]byte(`{"empty":[],"list":["a",{"k":1}],"obj":{}}`))
	require.NoError(t, err)
	require.NoError(t, s.Write(context.Background(), doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `{
    "empty": [],
    "list": [
        "a",
        {
            "k": 1
        }
    ],
    "obj": {}
}
`
	assert.Equal(t, want, string(data))
}

func TestDocumentFileStorage_WriteLeavesNoTempFiles(t *testing.T) {
	s, path := newTestDocumentStore(t, sampleDocument)

	doc, err := models.NewDocument([]byte(`{"a":1}`))
	require.NoError(t, err)
	require.NoError(t, s.Write(context.Background(), doc))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.json", entries[0].Name())
}

func TestDocumentFileStorage_WriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "config.json")
	s := NewDocumentFileStorage(path, logger.Nop())

	doc, err := models.NewDocument([]byte(`{}`))
	require.NoError(t, err)

	err = s.Write(context.Background(), doc)
	assert.ErrorIs(t, err, ErrDocumentNotSaved)
}

func TestDocumentFileStorage_CancelledContext(t *testing.T) {
	s, _ := newTestDocumentStore(t, sampleDocument)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDocumentFileStorage_Update(t *testing.T) {
	s, path := newTestDocumentStore(t, sampleDocument)
	ctx := context.Background()

	updated, err := s.Update(ctx, func(doc models.Document) (models.Document, error) {
		return doc.SetRaw([]byte(`{"resVersion":"r2"}`), "version", "android")
	})

	require.NoError(t, err)
	assert.Equal(t, "r2", updated.Lookup("version", "android", "resVersion").String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"resVersion": "r2"`))
}

func TestDocumentFileStorage_UpdateCallbackError(t *testing.T) {
	s, path := newTestDocumentStore(t, sampleDocument)
	boom := errors.New("boom")

	_, err := s.Update(context.Background(), func(models.Document) (models.Document, error) {
		return models.Document{}, boom
	})

	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleDocument, string(data))
}

func TestDocumentFileStorage_UpdateIsSerialized(t *testing.T) {
	s, _ := newTestDocumentStore(t, `{"counter":0}`)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, func(doc models.Document) (models.Document, error) {
				n := doc.Lookup("counter").Int()
				return doc.SetRaw([]byte(strconv.FormatInt(n+1, 10)), "counter")
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	doc, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), doc.Lookup("counter").Int())
}
