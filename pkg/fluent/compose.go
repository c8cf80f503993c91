package fluent

// Map transforms a successful value. A failure is carried over unchanged.
// Panics from fn are not captured.
func Map[In, Out any](input *Outcome[In], fn func(in In) Out) *Outcome[Out] {
	if err, failed := input.captured(); failed {
		return newOutcome[Out](failure{err: err})
	}
	return Succeed(fn(input.value()))
}

// Then runs fn on a successful value the way Of runs a computation: its error
// or panic becomes the new Outcome's failure. A failure is carried over and
// fn is not called.
func Then[In, Out any](input *Outcome[In], fn func(in In) (Out, error)) *Outcome[Out] {
	if err, failed := input.captured(); failed {
		return newOutcome[Out](failure{err: err})
	}
	v := input.value()
	return Of(func() (Out, error) {
		return fn(v)
	})
}

// Finally collapses an Outcome into a plain value.
func Finally[In, Out any](input *Outcome[In],
	onSuccess func(in In) Out,
	onError func(err error) Out) Out {

	if err, failed := input.captured(); failed {
		return onError(err)
	}
	return onSuccess(input.value())
}
