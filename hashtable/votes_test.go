package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVotes_Add(t *testing.T) {
	v := NewVotes()

	v.Add(Feature{HashCode: 10, DocumentID: 2})
	v.Add(Feature{HashCode: 10, DocumentID: 0})
	v.Add(Feature{HashCode: 10, DocumentID: 2})
	v.Add(Feature{HashCode: 11, DocumentID: 0})

	b := v.Lookup(10)
	require.NotNil(t, b)
	assert.Equal(t, []DocumentHits{{DocumentID: 2, Total: 2}, {DocumentID: 0, Total: 1}}, b.Votes)

	b = v.Lookup(11)
	require.NotNil(t, b)
	assert.Equal(t, []DocumentHits{{DocumentID: 0, Total: 1}}, b.Votes)

	assert.Nil(t, v.Lookup(12))
	assert.Equal(t, 2, v.Len())
}

func TestVotes_ResetRecyclesBuckets(t *testing.T) {
	v := NewVotes()
	for i := 0; i < 5; i++ {
		v.Add(Feature{HashCode: i, DocumentID: i})
	}

	v.Reset()
	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.Lookup(0))

	v.Add(Feature{HashCode: 100, DocumentID: 7})
	b := v.Lookup(100)
	require.NotNil(t, b)
	assert.Equal(t, []DocumentHits{{DocumentID: 7, Total: 1}}, b.Votes, "recycled bucket starts empty")
}
