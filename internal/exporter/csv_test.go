package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "result.csv")

	err := NewCSVWriter(nil).WriteCSV(path, WriteOptions{
		Headers: []string{"Domain", "Count"},
		Records: [][]string{
			{"a.com", "3"},
			{"b.com", "0"},
		},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Domain,Count\na.com,3\nb.com,0\n", string(data))
}

func TestWriteCSVWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.csv")

	err := NewCSVWriter(nil).WriteCSV(path, WriteOptions{
		Headers:   []string{"Domain"},
		Records:   [][]string{{"a.com"}},
		BOMPrefix: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	assert.Equal(t, "Domain\na.com\n", string(data[3:]))
}

func TestWriteCSVTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.csv")
	require.NoError(t, os.WriteFile(path, []byte("old content\nwith lines\n"), 0o644))

	err := NewCSVWriter(nil).WriteCSV(path, WriteOptions{Headers: []string{"Domain"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Domain\n", string(data))
}
