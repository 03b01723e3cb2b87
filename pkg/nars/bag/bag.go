// Package bag implements the bounded, priority-weighted probabilistic
// queue every scheduling surface in the kernel is built on: the concepts
// bag, the novel-tasks bag, and each concept's task-link and term-link
// bags. Only the contract in spec.md §4.4 is load-bearing; this is the
// one reference data-structure implementation behind that contract.
package bag

import "github.com/cognicore/nars/pkg/nars/budget"

// Item is anything a Bag can hold: keyed for merge-on-reinsertion, and
// carrying a budget whose priority determines its level.
type Item interface {
	BagKey() string
	BudgetValue() budget.Value
	SetBudget(budget.Value)
}

// Bag is a bounded capacity-N store spread across `levels` priority
// buckets. Level 0 is lowest priority, levels-1 is highest.
type Bag[T Item] struct {
	capacity int
	levels   int
	buckets  [][]T
	index    map[string]int // key -> level
	count    int
	rng      RNG
}

// New creates an empty bag with the given capacity and number of priority
// levels, driven by rng for takeout selection.
func New[T Item](capacity, levels int, rng RNG) *Bag[T] {
	if levels < 1 {
		levels = 1
	}
	return &Bag[T]{
		capacity: capacity,
		levels:   levels,
		buckets:  make([][]T, levels),
		index:    make(map[string]int),
		rng:      rng,
	}
}

// Len returns the number of items currently held.
func (b *Bag[T]) Len() int { return b.count }

func (b *Bag[T]) levelOf(priority float64) int {
	l := int(priority * float64(b.levels))
	if l >= b.levels {
		l = b.levels - 1
	}
	if l < 0 {
		l = 0
	}
	return l
}

// PutIn inserts item keyed by item.BagKey(). An existing item with the
// same key is merged (budgets combined by budget.Merge) and the merged
// item is re-seated at its new level. If the bag is at capacity and item
// is new, the lowest-priority resident is evicted and returned as ok=true.
func (b *Bag[T]) PutIn(item T) (evicted T, ok bool) {
	key := item.BagKey()
	if oldLevel, exists := b.index[key]; exists {
		existing, pos := b.findInLevel(oldLevel, key)
		merged := budget.Merge(existing.BudgetValue(), item.BudgetValue())
		existing.SetBudget(merged)
		b.removeAt(oldLevel, pos)
		newLevel := b.levelOf(merged.Priority)
		b.buckets[newLevel] = append(b.buckets[newLevel], existing)
		b.index[key] = newLevel
		b.count++
		return evicted, false
	}

	if b.count >= b.capacity && b.capacity > 0 {
		evicted, ok = b.evictLowest()
	}

	level := b.levelOf(item.BudgetValue().Priority)
	b.buckets[level] = append(b.buckets[level], item)
	b.index[key] = level
	b.count++
	return evicted, ok
}

func (b *Bag[T]) findInLevel(level int, key string) (T, int) {
	for i, it := range b.buckets[level] {
		if it.BagKey() == key {
			return it, i
		}
	}
	var zero T
	return zero, -1
}

func (b *Bag[T]) removeAt(level, pos int) T {
	bucket := b.buckets[level]
	item := bucket[pos]
	b.buckets[level] = append(bucket[:pos], bucket[pos+1:]...)
	delete(b.index, item.BagKey())
	b.count--
	return item
}

func (b *Bag[T]) evictLowest() (T, bool) {
	for level := 0; level < b.levels; level++ {
		if len(b.buckets[level]) > 0 {
			item := b.removeAt(level, 0)
			return item, true
		}
	}
	var zero T
	return zero, false
}

// TakeOut removes and returns an item with probability proportional to
// its level index: nonempty levels are weighted by (level+1), so high
// levels are overwhelmingly preferred, then the head of that level's
// queue is popped (FIFO within a level).
func (b *Bag[T]) TakeOut() (T, bool) {
	var zero T
	if b.count == 0 {
		return zero, false
	}
	totalWeight := 0
	for level := 0; level < b.levels; level++ {
		if len(b.buckets[level]) > 0 {
			totalWeight += level + 1
		}
	}
	if totalWeight == 0 {
		return zero, false
	}
	target := b.rng.Next() * float64(totalWeight)
	acc := 0.0
	for level := 0; level < b.levels; level++ {
		if len(b.buckets[level]) == 0 {
			continue
		}
		acc += float64(level + 1)
		if target < acc {
			return b.removeAt(level, 0), true
		}
	}
	// floating-point rounding edge case: fall back to the highest nonempty level.
	for level := b.levels - 1; level >= 0; level-- {
		if len(b.buckets[level]) > 0 {
			return b.removeAt(level, 0), true
		}
	}
	return zero, false
}

// PickOut removes and returns the specific item stored under key.
func (b *Bag[T]) PickOut(key string) (T, bool) {
	level, exists := b.index[key]
	if !exists {
		var zero T
		return zero, false
	}
	_, pos := b.findInLevel(level, key)
	if pos < 0 {
		var zero T
		return zero, false
	}
	return b.removeAt(level, pos), true
}

// PutBack decays item's durability (modeling evidence going stale while
// queued) and reinserts it.
func (b *Bag[T]) PutBack(item T, forgettingRate float64) (T, bool) {
	item.SetBudget(budget.Decay(item.BudgetValue(), forgettingRate))
	return b.PutIn(item)
}

// Peek returns the item stored under key without removing it.
func (b *Bag[T]) Peek(key string) (T, bool) {
	level, exists := b.index[key]
	if !exists {
		var zero T
		return zero, false
	}
	item, pos := b.findInLevel(level, key)
	if pos < 0 {
		var zero T
		return zero, false
	}
	return item, true
}
