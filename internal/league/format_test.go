package league

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_WideNumbers(t *testing.T) {
	table := []*Team{{Name: "Centurions", Wins: 100, Draws: 5, Losses: 12}}

	out := RenderTable(table)
	assert.Equal(t, header+"\n"+
		"Centurions                     | 117 | 100 |  5 | 12 | 305", out)
}

func TestRenderTable_IsPure(t *testing.T) {
	table := []*Team{
		{Name: "A", Wins: 2},
		{Name: "B", Draws: 1, Losses: 1},
	}
	assert.Equal(t, RenderTable(table), RenderTable(table))
	assert.Equal(t, 2, table[0].Wins)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, nil))
	assert.Equal(t, header, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteTable_Error(t *testing.T) {
	err := WriteTable(failingWriter{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
