package procs

// Proc is one step of a program. Run returns the proc to continue with, or
// nil when the step is complete.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

type Func[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return f(ctx)
}

// Drain runs proc until it completes. check is called before every step and
// stops the program when it returns an error.
func Drain[C any](ctx C, proc Proc[C], check func() error) (steps int, err error) {
	for proc != nil {
		if check != nil {
			if err := check(); err != nil {
				return steps, err
			}
		}
		proc, err = proc.Run(ctx)
		steps++
		if err != nil {
			return steps, err
		}
	}
	return steps, nil
}
