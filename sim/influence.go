package sim

// Influence is a deferred mutation raised by a Brain during Step and
// applied, by World, only after the tick's full element pass completes.
// Implementations carry index pairs into the grid rather than element
// pointers: an Influence is created and consumed within a single tick,
// so the indices it carries never outlive the pass that resolved them.
//
// participants is unexported: FoodInteraction is the only variant today,
// and a future variant is added in this package alongside the brains
// that understand it.
type Influence interface {
	participants() (emitter, receiver int)
}

// FoodInteraction moves amount units between two elements: the emitter
// loses amount, the receiver gains it. Ants use it both to take food
// from a Food element and to deposit carried food into a Colony.
type FoodInteraction struct {
	Emitter  int
	Receiver int
	Amount   float64
}

func (f FoodInteraction) participants() (int, int) { return f.Emitter, f.Receiver }

// SignedAmount returns the amount as the given role would apply it to
// its own stock: negative for the emitter, positive for the receiver.
func (f FoodInteraction) SignedAmount(asEmitter bool) float64 {
	if asEmitter {
		return -f.Amount
	}
	return f.Amount
}
