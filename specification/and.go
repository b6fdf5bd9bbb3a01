package specification

// and is the AND of two other specifications.
type and[T any] struct {
	left  Specification[T]
	right Specification[T]
}

func (spec *and[T]) IsSatisfiedBy(t T) bool {
	return spec.left.IsSatisfiedBy(t) && spec.right.IsSatisfiedBy(t)
}

func (spec *and[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *and[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *and[T]) Not() Specification[T] {
	return Not[T](spec)
}

// or is the OR of two other specifications.
type or[T any] struct {
	left  Specification[T]
	right Specification[T]
}

func (spec *or[T]) IsSatisfiedBy(t T) bool {
	return spec.left.IsSatisfiedBy(t) || spec.right.IsSatisfiedBy(t)
}

func (spec *or[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *or[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *or[T]) Not() Specification[T] {
	return Not[T](spec)
}

// not is the inverse of the given spec.
type not[T any] struct {
	spec Specification[T]
}

func (spec *not[T]) IsSatisfiedBy(t T) bool {
	return !spec.spec.IsSatisfiedBy(t)
}

func (spec *not[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *not[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *not[T]) Not() Specification[T] {
	return Not[T](spec)
}
