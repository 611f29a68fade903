package anchor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tag-reviver/anchor"
)

func TestTable(t *testing.T) {
	tbl := anchor.NewTable()

	assert.Equal(t, 1, tbl.Register("a", 1))
	assert.Equal(t, "ignored", tbl.Register("", "ignored"))
	assert.Equal(t, 1, tbl.Len())

	v, ok := tbl.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	tbl.Register("a", 2)
	v, _ = tbl.Lookup("a")
	assert.Equal(t, 2, v, "last registration wins")

	_, ok = tbl.Lookup("missing")
	assert.False(t, ok)

	tbl.Reset()
	assert.Zero(t, tbl.Len())
	_, ok = tbl.Lookup("a")
	assert.False(t, ok)
}

func TestZeroTable(t *testing.T) {
	var tbl anchor.Table

	_, ok := tbl.Lookup("a")
	assert.False(t, ok)

	tbl.Register("a", "x")
	v, ok := tbl.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}
