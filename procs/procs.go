package procs

// Procs runs its elements in order. A step that returns a continuation is
// replaced by it, so a nested program runs before the following steps.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx C) (Proc[C], error) {
	for len(p) > 0 && p[0] == nil {
		p = p[1:]
	}
	if len(p) == 0 {
		return nil, nil
	}
	next, err := p[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	rest := p[1:]
	if next == nil {
		if len(rest) == 0 {
			return nil, nil
		}
		return rest, nil
	}
	// p may be shared, never write into it
	ret := make(Procs[C], 0, len(rest)+1)
	ret = append(ret, next)
	ret = append(ret, rest...)
	return ret, nil
}
