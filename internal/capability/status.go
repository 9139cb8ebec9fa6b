package capability

// SlotState describes what a slot currently holds.
type SlotState string

const (
	SlotUnset    SlotState = "unset"
	SlotSet      SlotState = "set"
	SlotFallback SlotState = "fallback"
)

// SlotStatus is a point-in-time view of one slot.
type SlotStatus struct {
	Kind   Kind      `json:"kind" yaml:"kind"`
	Policy Policy    `json:"policy" yaml:"policy"`
	State  SlotState `json:"state" yaml:"state"`
	// Bound reports whether an initializer is attached.
	Bound bool `json:"bound" yaml:"bound"`
	// Triggered reports whether the initializer trigger has fired.
	Triggered bool `json:"triggered" yaml:"triggered"`
	// Offered is the initializer's own report of whether it registered anything.
	Offered        bool   `json:"offered" yaml:"offered"`
	Implementation string `json:"implementation,omitempty" yaml:"implementation,omitempty"`
}

// Status reports the state of the slot for k without firing its trigger.
func (r *Registry) Status(k Kind) SlotStatus {
	st := SlotStatus{Kind: k, Policy: k.Policy(), State: SlotUnset}
	if !k.Valid() {
		return st
	}

	s := &r.slots[k]
	s.mu.Lock()
	st.Bound = s.init != nil
	st.Triggered = s.fired
	st.Offered = s.offered
	s.mu.Unlock()

	if e := s.value.Load(); e != nil {
		st.State = SlotSet
		if e.fallback {
			st.State = SlotFallback
		}
		st.Implementation = typeName(e.access)
	}
	return st
}

// Snapshot reports every slot in kind order.
func (r *Registry) Snapshot() []SlotStatus {
	out := make([]SlotStatus, 0, kindCount)
	for _, k := range Kinds() {
		out = append(out, r.Status(k))
	}
	return out
}
