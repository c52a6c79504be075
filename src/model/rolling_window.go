package model

import "math"

// RollingWindow keeps the last N closing prices in a fixed backing array.
// Insertion overwrites the oldest slot, so memory stays bounded and Add is O(1).
type RollingWindow struct {
	values   []float64
	capacity int
	start    int
	count    int
}

func NewRollingWindow(capacity int) *RollingWindow {
	return &RollingWindow{
		values:   make([]float64, capacity),
		capacity: capacity,
	}
}

func (w *RollingWindow) Add(value float64) {
	index := (w.start + w.count) % w.capacity
	w.values[index] = value

	if w.count < w.capacity {
		w.count++
	} else {
		w.start = (w.start + 1) % w.capacity
	}
}

func (w *RollingWindow) Count() int {
	return w.count
}

func (w *RollingWindow) Capacity() int {
	return w.capacity
}

func (w *RollingWindow) Mean() float64 {
	if w.count == 0 {
		return 0.00
	}

	sum := 0.00

	for i := 0; i < w.count; i++ {
		sum += w.values[(w.start+i)%w.capacity]
	}

	return sum / float64(w.count)
}

// SampleStdev uses the (n - 1) denominator. Fewer than 2 values gives 0.
func (w *RollingWindow) SampleStdev() float64 {
	if w.count < 2 {
		return 0.00
	}

	mean := w.Mean()
	variance := 0.00

	for i := 0; i < w.count; i++ {
		diff := w.values[(w.start+i)%w.capacity] - mean
		variance += diff * diff
	}

	variance /= float64(w.count - 1)

	return math.Sqrt(variance)
}

// Values returns the held values oldest to newest.
func (w *RollingWindow) Values() []float64 {
	result := make([]float64, 0, w.count)

	for i := 0; i < w.count; i++ {
		result = append(result, w.values[(w.start+i)%w.capacity])
	}

	return result
}

// State exposes the physical layout for persistence.
func (w *RollingWindow) State() WindowState {
	slots := make([]float64, w.capacity)
	copy(slots, w.values)

	return WindowState{
		Offset: w.start,
		Count:  w.count,
		Slots:  slots,
	}
}

// RestoreWindow rebuilds a window from a persisted physical layout.
// The caller is responsible for validating the state against the capacity.
func RestoreWindow(capacity int, state WindowState) *RollingWindow {
	values := make([]float64, capacity)
	copy(values, state.Slots)

	return &RollingWindow{
		values:   values,
		capacity: capacity,
		start:    state.Offset,
		count:    state.Count,
	}
}

type WindowState struct {
	Offset int       `json:"offset"`
	Count  int       `json:"count"`
	Slots  []float64 `json:"slots"`
}
