package genidx_test

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binderylabs/bindery/genidx"
)

func TestDefaultArrayIsEmpty(t *testing.T) {
	var array genidx.Array[int]
	assert.Equal(t, uint32(0), array.EntriesSize())
}

func TestInsertAndRetrieve(t *testing.T) {
	var array genidx.Array[int]

	index := array.Insert(5)
	index2 := array.Insert(7)

	assert.Equal(t, uint32(2), array.EntriesSize())
	require.NotNil(t, array.Get(index))
	require.NotNil(t, array.Get(index2))
	assert.Equal(t, 5, *array.Get(index))
	assert.Equal(t, 7, *array.Get(index2))
}

func TestEraseRemovesTheValue(t *testing.T) {
	var array genidx.Array[int]

	index := array.Insert(5)
	require.Equal(t, uint32(1), array.EntriesSize())

	array.Erase(index)
	assert.Nil(t, array.Get(index))
	// entries are retained, only the occupant goes away
	assert.Equal(t, uint32(1), array.EntriesSize())
}

func TestEraseOnlyInvalidatesTheErasedIndex(t *testing.T) {
	var array genidx.Array[int]

	index := array.Insert(5)
	index2 := array.Insert(7)

	array.Erase(index)
	assert.Nil(t, array.Get(index))
	require.NotNil(t, array.Get(index2))
	assert.Equal(t, 7, *array.Get(index2))
}

func TestEraseIsIdempotent(t *testing.T) {
	var array genidx.Array[int]

	index := array.Insert(5)
	array.Erase(index)
	array.Erase(index)

	assert.Nil(t, array.Get(index))
	assert.Equal(t, uint32(1), array.EntriesSize())
}

func TestClearInvalidatesAllIndices(t *testing.T) {
	var array genidx.Array[int]

	index := array.Insert(5)
	index2 := array.Insert(7)

	array.Clear()
	assert.Equal(t, uint32(2), array.EntriesSize())
	assert.Nil(t, array.Get(index))
	assert.Nil(t, array.Get(index2))
}

func TestClearedSlotsAreReused(t *testing.T) {
	var array genidx.Array[int]

	entries := mapset.NewSet[uint32]()
	entries.Add(array.Insert(5).Entry())
	entries.Add(array.Insert(7).Entry())

	array.Clear()

	newEntries := mapset.NewSet[uint32]()
	newEntries.Add(array.Insert(8).Entry())
	newEntries.Add(array.Insert(9).Entry())

	assert.Equal(t, uint32(2), array.EntriesSize())
	assert.True(t, entries.Equal(newEntries))
}

func TestClearedSlotsComeBackUnderNewGenerations(t *testing.T) {
	var array genidx.Array[int]

	generations := mapset.NewSet[uint32]()
	generations.Add(array.Insert(5).Generation())
	generations.Add(array.Insert(7).Generation())

	array.Clear()

	newGenerations := mapset.NewSet[uint32]()
	newGenerations.Add(array.Insert(8).Generation())
	newGenerations.Add(array.Insert(9).Generation())

	assert.Equal(t, uint32(2), array.EntriesSize())
	assert.Equal(t, 0, generations.Intersect(newGenerations).Cardinality())
}

func TestFreeListIsLIFO(t *testing.T) {
	var array genidx.Array[int]

	first := array.Insert(1)
	second := array.Insert(2)
	array.Insert(3)

	array.Erase(first)
	array.Erase(second)

	// the most recently freed slot is handed out first
	assert.Equal(t, second.Entry(), array.Insert(4).Entry())
	assert.Equal(t, first.Entry(), array.Insert(5).Entry())
}

func TestGenerationsIncreaseMonotonically(t *testing.T) {
	var array genidx.Array[int]

	prev := array.Insert(0)
	for i := 1; i < 100; i++ {
		array.Erase(prev)
		next := array.Insert(i)
		require.Equal(t, prev.Entry(), next.Entry())
		require.Greater(t, next.Generation(), prev.Generation())
		prev = next
	}
}

func TestStaleIndexNeverResolvesAgain(t *testing.T) {
	var array genidx.Array[int]

	stale := array.Insert(1)
	array.Erase(stale)

	fresh := array.Insert(2)
	require.Equal(t, stale.Entry(), fresh.Entry())

	assert.Nil(t, array.Get(stale))
	require.NotNil(t, array.Get(fresh))
	assert.Equal(t, 2, *array.Get(fresh))
}

func TestIndexAtEntryOnEmptyArray(t *testing.T) {
	var array genidx.Array[int]

	for i := uint32(0); i < 10; i++ {
		_, ok := array.IndexAtEntry(i)
		assert.False(t, ok)
	}
}

func TestIndexAtEntryOnFullArray(t *testing.T) {
	var array genidx.Array[int]

	for i := 0; i < 10; i++ {
		array.Insert(i)
	}

	for i := uint32(0); i < array.EntriesSize(); i++ {
		idx, ok := array.IndexAtEntry(i)
		require.True(t, ok)
		assert.Equal(t, i, idx.Entry())

		_, ok = array.IndexAtEntry(i + array.EntriesSize())
		assert.False(t, ok)
	}
}

func TestIndexAtEntrySkipsVacatedSlots(t *testing.T) {
	var array genidx.Array[int]

	first := array.Insert(1)
	array.Insert(2)

	array.Erase(first)

	_, ok := array.IndexAtEntry(0)
	assert.False(t, ok)
	_, ok = array.IndexAtEntry(1)
	assert.True(t, ok)
}
