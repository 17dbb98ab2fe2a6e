package prop

import "math"
import "image/color"

// The shared machinery behind every property cell. Change callbacks
// only fire when the stored value actually changes; setting a cell to
// the value it already holds is a no-op.
type cell[T comparable] struct {
	value T
	hidden bool
	onChange func(T)
}

// Returns the current value of the cell.
func (self *cell[T]) Get() T { return self.value }

// Sets the value of the cell, invoking the change callback if the
// value differs from the currently stored one.
func (self *cell[T]) Set(value T) {
	if value == self.value { return }
	self.value = value
	if self.onChange != nil { self.onChange(value) }
}

// Sets the function invoked whenever the cell value changes.
// Only one callback can be active; later calls replace it.
func (self *cell[T]) OnChange(fn func(T)) { self.onChange = fn }

// Marks the cell as visible for editing.
func (self *cell[T]) Show() { self.hidden = false }

// Marks the cell as hidden from editing.
func (self *cell[T]) Hide() { self.hidden = true }

// Returns whether the cell should be exposed by editing widgets.
func (self *cell[T]) Visible() bool { return !self.hidden }

// An observable boolean property cell.
type Bool struct { cell[bool] }

// Creates a visible [Bool] cell with the given starting value.
func NewBool(value bool) *Bool {
	b := &Bool{}
	b.value = value
	return b
}

// An observable integer property cell with an optional value range.
type Int struct {
	cell[int]
	minValue int
	maxValue int
	ranged bool
}

// Creates a visible [Int] cell with the given starting value.
func NewInt(value int) *Int {
	i := &Int{}
	i.value = value
	return i
}

// Constrains the cell to [minValue, maxValue]. The current value
// is re-clamped immediately. Panics if minValue > maxValue.
func (self *Int) SetRange(minValue, maxValue int) {
	if minValue > maxValue { panic("minValue > maxValue") }
	self.minValue = minValue
	self.maxValue = maxValue
	self.ranged = true
	self.Set(self.value)
}

// Constrains the cell to values >= minValue, leaving the upper
// bound open. Shorthand for [Int.SetRange](minValue, [math.MaxInt]).
func (self *Int) SetMin(minValue int) {
	self.SetRange(minValue, math.MaxInt)
}

// Sets the value of the cell, clamping it to the configured range.
// The change callback fires only if the clamped value differs from
// the stored one.
func (self *Int) Set(value int) {
	if self.ranged {
		if value < self.minValue { value = self.minValue }
		if value > self.maxValue { value = self.maxValue }
	}
	self.cell.Set(value)
}

// An observable float property cell with an optional value range.
type Float struct {
	cell[float64]
	minValue float64
	maxValue float64
	ranged bool
}

// Creates a visible [Float] cell with the given starting value.
func NewFloat(value float64) *Float {
	f := &Float{}
	f.value = value
	return f
}

// Constrains the cell to [minValue, maxValue]. The current value
// is re-clamped immediately. Panics if minValue > maxValue.
func (self *Float) SetRange(minValue, maxValue float64) {
	if minValue > maxValue { panic("minValue > maxValue") }
	self.minValue = minValue
	self.maxValue = maxValue
	self.ranged = true
	self.Set(self.value)
}

// Sets the value of the cell, clamping it to the configured range.
func (self *Float) Set(value float64) {
	if self.ranged {
		if value < self.minValue { value = self.minValue }
		if value > self.maxValue { value = self.maxValue }
	}
	self.cell.Set(value)
}

// An observable color property cell. Only the RGB channels are
// meaningful for editing; pair the cell with a [Float] alpha cell
// if transparency must be editable too.
type Color struct { cell[color.RGBA] }

// Creates a visible [Color] cell with the given starting value.
func NewColor(value color.RGBA) *Color {
	c := &Color{}
	c.value = value
	return c
}

// An observable enumeration property cell. The option list is
// typically populated once at initialization from an external
// provider (e.g. the installed font families), and the selection
// is stored as an index into it.
//
// The stored index is not validated on Set: out-of-range selections
// are representable, and [Enum.Value]() reports them as invalid.
// Consumers decide how to react, usually by keeping their previous
// state.
type Enum struct {
	cell[int]
	options []string
}

// Creates a visible [Enum] cell with no options and the selection
// at the given index.
func NewEnum(index int) *Enum {
	e := &Enum{}
	e.value = index
	return e
}

// Replaces the option list. The selection index is left untouched.
func (self *Enum) SetOptions(options []string) {
	self.options = options
}

// Returns the option list. The returned slice must not be modified.
func (self *Enum) Options() []string { return self.options }

// Returns the option string for the current selection. The bool
// result is false if the selection index falls outside the option
// list.
func (self *Enum) Value() (string, bool) {
	index := self.value
	if index < 0 || index >= len(self.options) { return "", false }
	return self.options[index], true
}

// Returns the index of the given option and true, or (0, false)
// if the option is not present in the list.
func (self *Enum) IndexOf(option string) (int, bool) {
	for i, opt := range self.options {
		if opt == option { return i, true }
	}
	return 0, false
}
