package models

import "math"

// Wallet holds the session's economy counters. The counters never go negative.
type Wallet struct {
	Wood       int
	Stone      int
	Gold       int
	Blueprints int
}

// Count returns the counter for a resource kind.
func (w *Wallet) Count(k ResourceKind) int {
	switch k {
	case Wood:
		return w.Wood
	case Stone:
		return w.Stone
	case Gold:
		return w.Gold
	}
	return 0
}

// Add credits n units of k. Negative n and unknown kinds are ignored.
func (w *Wallet) Add(k ResourceKind, n int) {
	if n <= 0 || !k.Valid() {
		return
	}
	if c := w.counter(k); c != nil {
		*c += n
	}
}

// CanAfford reports whether every counter covers c.
func (w *Wallet) CanAfford(c Cost) bool {
	return w.Wood >= c.Wood && w.Stone >= c.Stone &&
		w.Gold >= c.Gold && w.Blueprints >= c.Blueprints
}

// Spend deducts c. Nothing is deducted if any counter is short.
func (w *Wallet) Spend(c Cost) bool {
	if c.Wood < 0 || c.Stone < 0 || c.Gold < 0 || c.Blueprints < 0 {
		return false
	}
	if !w.CanAfford(c) {
		return false
	}
	w.Wood -= c.Wood
	w.Stone -= c.Stone
	w.Gold -= c.Gold
	w.Blueprints -= c.Blueprints
	return true
}

// TheftReport lists what a single steal took.
type TheftReport struct {
	Wood, Stone, Gold int
}

// Any reports whether anything was taken.
func (r TheftReport) Any() bool { return r.Wood > 0 || r.Stone > 0 || r.Gold > 0 }

// Total is the sum of stolen units.
func (r TheftReport) Total() int { return r.Wood + r.Stone + r.Gold }

// Steal removes fraction of each resource counter, truncated toward zero.
// Blueprints are exempt.
func (w *Wallet) Steal(fraction float64) TheftReport {
	var r TheftReport
	r.Wood = takeFraction(&w.Wood, fraction)
	r.Stone = takeFraction(&w.Stone, fraction)
	r.Gold = takeFraction(&w.Gold, fraction)
	return r
}

func takeFraction(counter *int, fraction float64) int {
	n := int(math.Trunc(float64(*counter) * fraction))
	if n <= 0 {
		return 0
	}
	if n > *counter {
		n = *counter
	}
	*counter -= n
	return n
}

func (w *Wallet) counter(k ResourceKind) *int {
	switch k {
	case Wood:
		return &w.Wood
	case Stone:
		return &w.Stone
	case Gold:
		return &w.Gold
	}
	return nil
}
