package either

// Sided is implemented by values that hold one of two variants.
type Sided interface {
	// IsLeft returns true if the failure variant is held
	IsLeft() bool
	// IsRight returns true if the success variant is held
	IsRight() bool
}

// LeftProvider exposes the failure payload
type LeftProvider[L any] interface {
	Sided
	// LeftValue returns the failure payload and whether it is present
	LeftValue() (L, bool)
}

// RightProvider exposes the success payload
type RightProvider[R any] interface {
	Sided
	// RightValue returns the success payload and whether it is present
	RightValue() (R, bool)
}

// Provider exposes both sides of a two-armed value
type Provider[L, R any] interface {
	LeftProvider[L]
	RightProvider[R]
}

var _ Provider[error, int] = Either[error, int]{}
