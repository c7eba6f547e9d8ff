package orders

// Order lifecycle. Delivered and cancelled are terminal.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipping   = "shipping"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var validNext = map[string]map[string]bool{
	StatusPending:    {StatusProcessing: true, StatusCancelled: true},
	StatusProcessing: {StatusShipping: true},
	StatusShipping:   {StatusDelivered: true},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether the forward path (or the owner's
// pending-only cancellation) allows the change. Admin status writes bypass
// this check on purpose.
func CanTransition(from, to string) bool {
	return validNext[from][to]
}

// ValidStatus reports whether s is one of the five recognized values.
func ValidStatus(s string) bool {
	_, ok := validNext[s]
	return ok
}
