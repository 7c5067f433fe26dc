package util

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedKeys(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}
	assert.Equal(t, []int{1, 2, 3}, SortedKeys(m))
}

func TestMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Min(2, 5))
	assert.Equal(uint8(1), Min(uint8(4), uint8(1)))
}

func TestWriteJSONLines(t *testing.T) {
	type item struct {
		Name string `json:"name"`
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSONLines(&buf, []item{{"a"}, {"b"}}))
	assert.Equal(t, "{\"name\":\"a\"}\n{\"name\":\"b\"}\n", buf.String())
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	assert.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)
}
