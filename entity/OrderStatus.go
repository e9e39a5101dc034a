package entity

// Order statuses.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderServed    = "served"
	OrderDone      = "done"
	OrderCancelled = "cancelled"
)

// orderTransitions is the legal forward-transition table. No back-transitions,
// no self-transitions; done and cancelled are terminal.
var orderTransitions = map[string][]string{
	OrderPending:   {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderServed, OrderCancelled},
	OrderServed:    {OrderDone},
	OrderDone:      {},
	OrderCancelled: {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TerminalStatus reports whether a status has no further legal transitions.
func TerminalStatus(s string) bool {
	return s == OrderDone || s == OrderCancelled
}

func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// ActiveOrderStatuses lists the non-terminal statuses.
func ActiveOrderStatuses() []string {
	return []string{OrderPending, OrderPreparing, OrderServed}
}
