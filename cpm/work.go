package cpm

import "github.com/utkarsh5026/cpm/random"

// Randomizable is a value the harness refreshes with random content before
// every trial. See package random for ready made vectors and scalars.
type Randomizable = random.Item

// Randomizer overwrites items in place. *random.Source is the default.
type Randomizer interface {
	Randomize(items ...Randomizable)
}

// Data is the fixed set of inputs produced by an Initializer for one size.
type Data []Randomizable

// Item returns the i-th input of d as T. It panics if the input has another
// type.
func Item[T Randomizable](d Data, i int) T {
	return d[i].(T)
}

// Work is a unit of work taking no input data. Build it with Call or
// CallSized.
type Work struct {
	fn func(Size)
}

// Call wraps a unit of work that ignores the size.
func Call(fn func()) Work {
	return Work{fn: func(Size) { fn() }}
}

// CallSized wraps a unit of work receiving the size being measured.
func CallSized(fn func(Size)) Work {
	return Work{fn: fn}
}

// DataWork is a unit of work receiving the inputs built by an Initializer.
// Build it with OnData or OnSizedData.
type DataWork struct {
	fn func(Size, Data)
}

// OnData wraps a unit of work receiving only the inputs.
func OnData(fn func(Data)) DataWork {
	return DataWork{fn: func(_ Size, d Data) { fn(d) }}
}

// OnSizedData wraps a unit of work receiving the size and the inputs.
func OnSizedData(fn func(Size, Data)) DataWork {
	return DataWork{fn: fn}
}

// Initializer allocates the inputs of a two-pass measurement, once per size.
type Initializer struct {
	fn func(Size) Data
}

// Init wraps an initializer receiving the size being measured.
func Init(fn func(Size) Data) Initializer {
	return Initializer{fn: fn}
}

// InitFixed wraps an initializer that allocates the same inputs for every
// size.
func InitFixed(fn func() Data) Initializer {
	return Initializer{fn: func(Size) Data { return fn() }}
}
