package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const sampleDocument = `{
	"server": {"mode": "cn", "host": "127.0.0.1", "port": 8080},
	"version": {"android": {"resVersion": "24-01-01", "clientVersion": "2.1.41"}},
	"versionGlobal": {"android": "1.9.0"},
	"assets": {"autoUpdate": false},
	"networkConfig": {"cn": {"content": {"funcVer": "V051", "configs": {"V051": {"network": {"hu": "{server}/hu"}}}}}},
	"dotted.key": {"a.b": 1}
}`

func mustDocument(t *testing.T, raw string) Document {
	t.Helper()
	doc, err := NewDocument([]byte(raw))
	require.NoError(t, err)
	return doc
}

func TestNewDocument_RejectsInvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"truncated", `{"server": {`},
		{"garbage", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDocument([]byte(tt.raw))
			assert.ErrorIs(t, err, ErrInvalidJSON)
		})
	}
}

func TestNewDocument_CopiesInput(t *testing.T) {
	raw := []byte(`{"a":"b"}`)
	doc, err := NewDocument(raw)
	require.NoError(t, err)

	raw[6] = 'x'
	assert.Equal(t, `{"a":"b"}`, string(doc.Raw()))
}

func TestDocument_Get(t *testing.T) {
	doc := mustDocument(t, sampleDocument)

	t.Run("present", func(t *testing.T) {
		res, err := doc.Get("versionGlobal", "android")
		require.NoError(t, err)
		assert.Equal(t, "1.9.0", res.Str)
	})

	t.Run("absent leaf", func(t *testing.T) {
		_, err := doc.Get("versionGlobal", "ios")
		assert.ErrorIs(t, err, ErrMissingKey)
	})

	t.Run("absent parent", func(t *testing.T) {
		_, err := doc.Get("networkConfig", "global", "content")
		assert.ErrorIs(t, err, ErrMissingKey)
	})

	t.Run("keys with path characters", func(t *testing.T) {
		res, err := doc.Get("dotted.key", "a.b")
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Int())
	})
}

func TestDocument_TypedAccessors(t *testing.T) {
	doc := mustDocument(t, sampleDocument)

	host, err := doc.String("server", "host")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)

	port, err := doc.Uint("server", "port")
	require.NoError(t, err)
	assert.Equal(t, uint64(8080), port)

	_, err = doc.String("server", "port")
	assert.ErrorIs(t, err, ErrUnexpectedType)

	_, err = doc.Uint("server", "host")
	assert.ErrorIs(t, err, ErrUnexpectedType)
}

func TestDocument_UintRejectsNonIntegers(t *testing.T) {
	for _, port := range []string{"8080.7", "-1", "8e3", "80.0"} {
		t.Run(port, func(t *testing.T) {
			doc := mustDocument(t, `{"server":{"mode":"cn","host":"h","port":`+port+`}}`)

			_, err := doc.Uint("server", "port")
			assert.ErrorIs(t, err, ErrUnexpectedType)

			_, err = doc.ServerSettings()
			assert.ErrorIs(t, err, ErrUnexpectedType)

			_, err = doc.ListenAddress()
			assert.ErrorIs(t, err, ErrUnexpectedType)
		})
	}
}

func TestDocument_SetRaw(t *testing.T) {
	doc := mustDocument(t, sampleDocument)

	updated, err := doc.SetRaw([]byte(`"2.2.0"`), "version", "android")
	require.NoError(t, err)

	assert.Equal(t, "2.2.0", updated.Lookup("version", "android").Str)
	assert.Equal(t, gjson.JSON, doc.Lookup("version", "android").Type, "receiver must stay untouched")

	created, err := doc.SetRaw([]byte(`{"x":1}`), "brand", "new")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Lookup("brand", "new", "x").Int())

	_, err = doc.SetRaw([]byte(`{`), "version", "android")
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestDocument_ModeAndAutoUpdate(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantMode   Mode
		wantSet    bool
		wantUpdate bool
	}{
		{"cn", `{"server":{"mode":"cn"},"assets":{"autoUpdate":true}}`, ModeCN, true, true},
		{"global", `{"server":{"mode":"global"}}`, ModeGlobal, true, false},
		{"absent", `{"server":{}}`, "", false, false},
		{"not a string", `{"server":{"mode":1},"assets":{"autoUpdate":"true"}}`, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDocument(t, tt.raw)
			mode, ok := doc.Mode()
			assert.Equal(t, tt.wantMode, mode)
			assert.Equal(t, tt.wantSet, ok)
			assert.Equal(t, tt.wantUpdate, doc.AutoUpdate())
		})
	}
}

func TestDocument_ServerSettings(t *testing.T) {
	doc := mustDocument(t, sampleDocument)

	settings, err := doc.ServerSettings()
	require.NoError(t, err)
	assert.Equal(t, ServerSettings{Mode: ModeCN, Host: "127.0.0.1", Port: 8080}, settings)
	assert.Equal(t, "127.0.0.1:8080", settings.Address())
	assert.Equal(t, "http://127.0.0.1:8080", settings.URL())

	_, err = mustDocument(t, `{"server":{"host":"127.0.0.1","port":8080}}`).ServerSettings()
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestDocument_ListenAddress(t *testing.T) {
	addr, err := mustDocument(t, `{"server":{"host":"0.0.0.0","port":8443}}`).ListenAddress()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8443", addr)

	_, err = mustDocument(t, `{"server":{"host":"0.0.0.0"}}`).ListenAddress()
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = mustDocument(t, `{"server":{"host":"0.0.0.0","port":"8443"}}`).ListenAddress()
	assert.ErrorIs(t, err, ErrUnexpectedType)
}

func TestMode_VersionKeys(t *testing.T) {
	assert.Equal(t, []string{"version", "android"}, ModeCN.VersionKeys())
	assert.Equal(t, []string{"versionGlobal", "android"}, ModeGlobal.VersionKeys())
	assert.Equal(t, []string{"version", "android"}, Mode("").VersionKeys())
	assert.Equal(t, []string{"version", "android"}, Mode("kr").VersionKeys())
}

func TestPath(t *testing.T) {
	assert.Equal(t, "networkConfig.cn.content", Path("networkConfig", "cn", "content"))
	assert.Equal(t, `a\.b.c\*`, Path("a.b", "c*"))
	assert.Equal(t, "", Path())
}

func TestNewEmptyDelta(t *testing.T) {
	delta := NewEmptyDelta()
	assert.NotNil(t, delta.PlayerDataDelta.Deleted)
	assert.NotNil(t, delta.PlayerDataDelta.Modified)
	assert.Empty(t, delta.PlayerDataDelta.Deleted)
	assert.Empty(t, delta.PlayerDataDelta.Modified)
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
}
