package bindery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binderylabs/bindery"
)

type dimensions struct {
	w, h int
}

func TestPropertyCanBeWritten(t *testing.T) {
	p := bindery.NewProperty(3)
	require.NoError(t, p.SetValue(7))
	assert.Equal(t, 7, p.Value())

	q := bindery.NewProperty(dimensions{3, 4})
	require.NoError(t, q.SetValue(dimensions{6, 14}))
	assert.Equal(t, dimensions{6, 14}, q.Value())
}

func TestEqualValueEmitsNoSignals(t *testing.T) {
	p := bindery.NewProperty(3)

	changed := 0
	aboutToChange := 0
	p.ValueChanged().Connect(func(int) { changed++ })
	p.ValueAboutToChange().Connect(func(int, int) { aboutToChange++ })

	require.NoError(t, p.SetValue(3))
	assert.Equal(t, 3, p.Value())
	assert.Equal(t, 0, changed)
	assert.Equal(t, 0, aboutToChange)
}

func TestChangeEmitsBothSignals(t *testing.T) {
	p := bindery.NewProperty(3)

	var gotOld, gotNew, gotChanged int
	p.ValueAboutToChange().Connect(func(oldValue, newValue int) {
		gotOld = oldValue
		gotNew = newValue
	})
	p.ValueChanged().Connect(func(v int) { gotChanged = v })

	require.NoError(t, p.SetValue(7))
	assert.Equal(t, 3, gotOld)
	assert.Equal(t, 7, gotNew)
	assert.Equal(t, 7, gotChanged)
}

func TestAboutToChangeFiresBeforeTheStore(t *testing.T) {
	p := bindery.NewProperty(3)

	var valueDuringAboutToChange int
	p.ValueAboutToChange().Connect(func(int, int) {
		valueDuringAboutToChange = p.Value()
	})

	require.NoError(t, p.SetValue(7))
	assert.Equal(t, 3, valueDuringAboutToChange)
}

func TestCustomEqualityCanMakeAPropertyMonotonic(t *testing.T) {
	// values are "equal" unless they increase, so the property only ever
	// goes up
	p := bindery.NewPropertyWithEquality(0, func(current, next int) bool {
		return next <= current
	})

	changed := 0
	p.ValueChanged().Connect0(func() { changed++ })

	require.NoError(t, p.SetValue(1))
	assert.Equal(t, 1, changed)
	assert.Equal(t, 1, p.Value())

	require.NoError(t, p.SetValue(-1))
	assert.Equal(t, 1, changed)
	assert.Equal(t, 1, p.Value())
}

func TestDestroyEmitsTheDestroyedSignal(t *testing.T) {
	p := bindery.NewProperty(5)

	notified := false
	p.Destroyed().Connect(func() { notified = true })

	p.Destroy()
	assert.True(t, notified)
}

func TestDestroyDisconnectsAllListeners(t *testing.T) {
	p := bindery.NewProperty(5)

	h := p.ValueChanged().Connect(func(int) {})
	p.Destroy()

	assert.False(t, h.IsActive())
}

func TestValueRefAllowsInPlaceMutation(t *testing.T) {
	p := bindery.NewProperty(dimensions{3, 4})

	changed := 0
	p.ValueChanged().Connect0(func() { changed++ })

	p.ValueRef().w = 9

	// in-place mutation bypasses the change machinery on purpose
	assert.Equal(t, dimensions{9, 4}, p.Value())
	assert.Equal(t, 0, changed)
}

type manualUpdater struct {
	value    int
	updateFn func(int)
}

func (u *manualUpdater) Get() int { return u.value }

func (u *manualUpdater) SetUpdateFunction(fn func(int)) { u.updateFn = fn }

func (u *manualUpdater) set(value int) {
	u.value = value
	if u.updateFn != nil {
		u.updateFn(value)
	}
}

func TestPropertyWithUpdaterAdoptsItsValue(t *testing.T) {
	p := bindery.NewPropertyWithUpdater[int](&manualUpdater{value: 42})
	assert.Equal(t, 42, p.Value())
	assert.True(t, p.HasBinding())
}

func TestPropertyWithUpdaterRejectsDirectWrites(t *testing.T) {
	p := bindery.NewPropertyWithUpdater[int](&manualUpdater{value: 7})

	err := p.SetValue(4)
	assert.ErrorIs(t, err, bindery.ErrReadOnlyProperty)
	assert.Equal(t, 7, p.Value())
}

func TestPropertyWithUpdaterNotifiesOnPushedValues(t *testing.T) {
	updater := &manualUpdater{value: 7}
	p := bindery.NewPropertyWithUpdater[int](updater)

	slotCalled := false
	updatedValue := 0
	p.ValueChanged().Connect(func(v int) {
		updatedValue = v
		slotCalled = true
	})

	updater.set(123)
	assert.Equal(t, 123, p.Value())
	assert.True(t, slotCalled)
	assert.Equal(t, 123, updatedValue)
}

func TestResetDetachesTheUpdater(t *testing.T) {
	updater := &manualUpdater{value: 7}
	p := bindery.NewPropertyWithUpdater[int](updater)

	changed := 0
	p.ValueChanged().Connect0(func() { changed++ })

	p.Reset()
	assert.False(t, p.HasBinding())

	require.NoError(t, p.SetValue(9))
	assert.Equal(t, 9, p.Value())
	assert.Equal(t, 1, changed)

	// detached updaters push into the void
	updater.set(1000)
	assert.Equal(t, 9, p.Value())
}

func TestMoveTransfersTheValue(t *testing.T) {
	src := bindery.NewProperty(42)
	dst := bindery.NewProperty(0)

	dst.Move(src)
	assert.Equal(t, 42, dst.Value())
	assert.Equal(t, 0, src.Value())
}

func TestMoveKeepsListenerConnections(t *testing.T) {
	src := bindery.NewProperty(42)

	countVoid := 0
	countValue := 0
	src.ValueChanged().Connect0(func() { countVoid++ })
	src.ValueChanged().Connect(func(int) { countValue++ })

	dst := bindery.NewProperty(0)
	dst.Move(src)

	require.NoError(t, dst.SetValue(123))
	assert.Equal(t, 1, countVoid)
	assert.Equal(t, 1, countValue)
	assert.Equal(t, 123, dst.Value())
}

func TestMoveEmitsMovedOnTheDestination(t *testing.T) {
	src := bindery.NewProperty(1)

	var movedTo *bindery.Property[int]
	src.Moved().Connect(func(dest *bindery.Property[int]) { movedTo = dest })

	dst := bindery.NewProperty(0)
	dst.Move(src)

	assert.Same(t, dst, movedTo)
}

func TestMovedFromPropertyStaysUsable(t *testing.T) {
	src := bindery.NewProperty(42)
	dst := bindery.NewProperty(0)
	dst.Move(src)

	changed := 0
	src.ValueChanged().Connect0(func() { changed++ })

	require.NoError(t, src.SetValue(5))
	assert.Equal(t, 5, src.Value())
	assert.Equal(t, 1, changed)
}

func TestMoveCarriesTheUpdater(t *testing.T) {
	updater := &manualUpdater{value: 7}
	src := bindery.NewPropertyWithUpdater[int](updater)
	dst := bindery.NewProperty(0)

	dst.Move(src)
	assert.True(t, dst.HasBinding())
	assert.False(t, src.HasBinding())

	err := dst.SetValue(1)
	assert.ErrorIs(t, err, bindery.ErrReadOnlyProperty)

	updater.set(99)
	assert.Equal(t, 99, dst.Value())
}
