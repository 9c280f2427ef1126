package alphabets

import (
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/pagehook/pageconfigs"
)

type Module struct {
	dscope.Module
	Configs pageconfigs.Module
}

// Table panics on an invalid configured ordering, so bad configs fail at startup.
func (Module) Table(
	order pageconfigs.AlphabetOrder,
) Table {
	table, err := FromOrder(string(order))
	if err != nil {
		panic(err)
	}
	return table
}

// FromOrder builds the table of a configured ordering, empty means Natural.
func FromOrder(order string) (Table, error) {
	if order == "" {
		return Natural(), nil
	}
	table, err := New(order)
	if err != nil {
		return table, fmt.Errorf("alphabet config: %w", err)
	}
	return table, nil
}
