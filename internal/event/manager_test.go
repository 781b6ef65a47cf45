package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInOrder(t *testing.T) {
	m := NewManager()
	var got []string
	m.Subscribe(TypePatternChanged, func(e Event) bool {
		got = append(got, "first:"+e.Data.(PatternChangedData).Pattern)
		return false
	})
	m.Subscribe(TypePatternChanged, func(e Event) bool {
		got = append(got, "second")
		return false
	})

	m.Dispatch(TypePatternChanged, PatternChangedData{Pattern: "a+"})
	assert.Equal(t, []string{"first:a+", "second"}, got)
}

func TestDispatchConsumedStopsDelivery(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return true })
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return false })

	m.Dispatch(TypeAppQuit, AppQuitData{})
	assert.Equal(t, 1, calls)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Dispatch(TypeFlagsChanged, nil) })
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppReady, func(Event) bool {
		m.Subscribe(TypeAppReady, func(Event) bool { calls++; return false })
		return false
	})

	m.Dispatch(TypeAppReady, nil)
	assert.Equal(t, 0, calls)
	m.Dispatch(TypeAppReady, nil)
	assert.Equal(t, 1, calls)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "DecorationChanged", TypeDecorationChanged.String())
	assert.Equal(t, "Unknown", Type(999).String())
}
