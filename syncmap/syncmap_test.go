package syncmap_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-afaligner/afalign/syncmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMap() syncmap.SyncMap {
	var s syncmap.SyncMap
	s.Put("text.xhtml", "f0001", syncmap.FragmentInfo{AudioFile: "audio.mp3", BeginTime: "0:00:00.000", EndTime: "0:00:02.600"})
	s.Put("text.xhtml", "f0002", syncmap.FragmentInfo{AudioFile: "audio.mp3", BeginTime: "0:00:02.600", EndTime: "0:00:05.880"})

	return s
}

func TestPut_GroupsFragmentsByTextFile(t *testing.T) {
	s := sampleMap()
	require.Len(t, s.Texts, 1)
	assert.Equal(t, "text.xhtml", s.Texts[0].TextFile)
	assert.Len(t, s.Texts[0].Fragments, 2)
	assert.Equal(t, "f0001", s.Texts[0].Fragments[0].FragmentID)
}

func TestEnsureText_AddsEmptyEntryOnce(t *testing.T) {
	var s syncmap.SyncMap
	s.EnsureText("text.xhtml")
	s.EnsureText("text.xhtml")
	assert.Len(t, s.Texts, 1)
	assert.Empty(t, s.Texts[0].Fragments)
}

func TestString_ListsEveryFragment(t *testing.T) {
	out := sampleMap().String()
	assert.True(t, strings.Contains(out, "text.xhtml"))
	assert.True(t, strings.Contains(out, "f0001 audio.mp3 0:00:00.000 0:00:02.600"))
	assert.True(t, strings.Contains(out, "f0002 audio.mp3 0:00:02.600 0:00:05.880"))
}

func TestWriteJSON_WritesOneFilePerText(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, syncmap.WriteJSON(sampleMap(), dir))

	data, err := os.ReadFile(filepath.Join(dir, "text.json"))
	require.NoError(t, err)
	body := string(data)
	assert.True(t, strings.Contains(body, `"f0001"`))
	assert.True(t, strings.Contains(body, `"audio_file": "audio.mp3"`))
	assert.True(t, strings.Contains(body, `"begin_time": "0:00:00.000"`))
}

func TestWriteSMIL_OmitsZeroDurationFragment(t *testing.T) {
	var s syncmap.SyncMap
	s.Put("text.xhtml", "f0001", syncmap.FragmentInfo{AudioFile: "audio.mp3", BeginTime: "0:00:00.000", EndTime: "0:00:00.000"})
	s.Put("text.xhtml", "f0002", syncmap.FragmentInfo{AudioFile: "audio.mp3", BeginTime: "0:00:00.000", EndTime: "0:00:01.000"})

	dir := t.TempDir()
	require.NoError(t, syncmap.WriteSMIL(s, dir))

	data, err := os.ReadFile(filepath.Join(dir, "text.smil"))
	require.NoError(t, err)
	body := string(data)
	assert.False(t, strings.Contains(body, "f0001"))
	assert.True(t, strings.Contains(body, "f0002"))
	assert.True(t, strings.Contains(body, `clipBegin="0:00:00.000"`))
	assert.True(t, strings.Contains(body, `clipEnd="0:00:01.000"`))
}

func TestWriteSMIL_EscapesTextPath(t *testing.T) {
	var s syncmap.SyncMap
	s.Put("a&b.xhtml", "f0001", syncmap.FragmentInfo{AudioFile: "audio.mp3", BeginTime: "0:00:00.000", EndTime: "0:00:01.000"})

	dir := t.TempDir()
	require.NoError(t, syncmap.WriteSMIL(s, dir))

	data, err := os.ReadFile(filepath.Join(dir, "a&b.smil"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "a&amp;b.xhtml"))
}
