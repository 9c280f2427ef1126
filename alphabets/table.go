package alphabets

import (
	"errors"
	"fmt"
)

// Size is the number of printable ASCII symbols, 0x20 through 0x7e.
const Size = 95

var (
	ErrBadLength    = errors.New("alphabet must have exactly 95 symbols")
	ErrNotPrintable = errors.New("alphabet symbol is not printable ascii")
	ErrDuplicate    = errors.New("alphabet symbol appears twice")
)

// Table is an ordering of the printable ASCII symbols laid out twice, so
// indexes in [Size, 2*Size) wrap to the start of the ordering.
type Table struct {
	chars     [2 * Size]byte
	positions [128]int8
}

func New(order string) (ret Table, err error) {
	if len(order) != Size {
		return ret, fmt.Errorf("%w: got %d", ErrBadLength, len(order))
	}
	for i := range ret.positions {
		ret.positions[i] = -1
	}
	for i := 0; i < Size; i++ {
		c := order[i]
		if c < ' ' || c > '~' {
			return ret, fmt.Errorf("%w: %q at %d", ErrNotPrintable, c, i)
		}
		if ret.positions[c] >= 0 {
			return ret, fmt.Errorf("%w: %q at %d and %d", ErrDuplicate, c, ret.positions[c], i)
		}
		ret.positions[c] = int8(i)
		ret.chars[i] = c
		ret.chars[i+Size] = c
	}
	return ret, nil
}

func MustNew(order string) Table {
	table, err := New(order)
	if err != nil {
		panic(err)
	}
	return table
}

var natural = func() Table {
	buf := make([]byte, 0, Size)
	for c := byte(' '); c <= '~'; c++ {
		buf = append(buf, c)
	}
	return MustNew(string(buf))
}()

// Natural returns the table in ascii order, so PositionOf(c) == c - 0x20.
func Natural() Table {
	return natural
}

// PositionOf searches the first half of the table.
func (t Table) PositionOf(c byte) (int, bool) {
	if c >= 128 || t.IsZero() {
		return 0, false
	}
	pos := t.positions[c]
	if pos < 0 {
		return 0, false
	}
	return int(pos), true
}

// CharAt accepts indexes in [0, 2*Size).
func (t Table) CharAt(i int) byte {
	if i < 0 || i >= 2*Size {
		panic(fmt.Errorf("alphabet index out of range: %d", i))
	}
	return t.chars[i]
}

func (t Table) String() string {
	return string(t.chars[:Size])
}

// IsZero reports whether the table was never built by New.
func (t Table) IsZero() bool {
	return t.chars[0] == 0
}
