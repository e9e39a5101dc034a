package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{OrderPending, OrderPreparing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderServed, false},
		{OrderPending, OrderDone, false},
		{OrderPreparing, OrderServed, true},
		{OrderPreparing, OrderCancelled, true},
		{OrderPreparing, OrderDone, false},
		{OrderPreparing, OrderPending, false},
		{OrderServed, OrderDone, true},
		{OrderServed, OrderCancelled, false},
		{OrderServed, OrderPreparing, false},
		{OrderDone, OrderPending, false},
		{OrderDone, OrderCancelled, false},
		{OrderCancelled, OrderPending, false},
		// self-transitions are never legal
		{OrderPending, OrderPending, false},
		{OrderDone, OrderDone, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTerminalStatus(t *testing.T) {
	assert.True(t, TerminalStatus(OrderDone))
	assert.True(t, TerminalStatus(OrderCancelled))
	assert.False(t, TerminalStatus(OrderPending))
	assert.False(t, TerminalStatus(OrderPreparing))
	assert.False(t, TerminalStatus(OrderServed))
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderPending))
	assert.False(t, ValidOrderStatus("delivered"))
	assert.False(t, ValidOrderStatus(""))
}
