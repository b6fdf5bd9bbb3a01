package specification

// Specification interface.
// Use New for creating specifications from a predicate, only the predicate must be implemented.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]
}

func New[T any](predicate func(t T) bool) Specification[T] {
	return &base[T]{predicate: predicate}
}

func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return &and[T]{left: left, right: right}
}

func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return &or[T]{left: left, right: right}
}

func Not[T any](spec Specification[T]) Specification[T] {
	return &not[T]{spec: spec}
}

// Conjunction is satisfied when all specs are satisfied. An empty conjunction is always satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return &conjunction[T]{specs: specs}
}

// Disjunction is satisfied when any spec is satisfied. An empty disjunction is never satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return &disjunction[T]{specs: specs}
}
