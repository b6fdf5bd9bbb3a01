package specification

type conjunction[T any] struct {
	specs []Specification[T]
}

func (spec *conjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.specs {
		if !s.IsSatisfiedBy(t) {
			return false
		}
	}
	return true
}

func (spec *conjunction[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *conjunction[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *conjunction[T]) Not() Specification[T] {
	return Not[T](spec)
}

type disjunction[T any] struct {
	specs []Specification[T]
}

func (spec *disjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.specs {
		if s.IsSatisfiedBy(t) {
			return true
		}
	}
	return false
}

func (spec *disjunction[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *disjunction[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *disjunction[T]) Not() Specification[T] {
	return Not[T](spec)
}
