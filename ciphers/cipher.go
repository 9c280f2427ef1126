// Package ciphers implements a keyed substitution over an alphabet table.
//
// A cipher literal is query-escaped text whose bytes are symbols of the
// table. Each symbol at position p decodes to the symbol at position
// (p - 95 - key) mod 95; Encode applies the inverse shift.
package ciphers

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/reusee/pagehook/alphabets"
)

var (
	ErrInvalidEncoding = errors.New("invalid percent encoding")
	ErrUnknownSymbol   = errors.New("symbol not in alphabet")
)

type UnknownSymbolError struct {
	Char   byte
	Offset int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", ErrUnknownSymbol, e.Char, e.Offset)
}

func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

func Decode(table alphabets.Table, cipher string, key int) (string, error) {
	raw, err := url.QueryUnescape(cipher)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return shift(table, raw, -alphabets.Size-key%alphabets.Size)
}

func Encode(table alphabets.Table, plain string, key int) (string, error) {
	shifted, err := shift(table, plain, alphabets.Size+key%alphabets.Size)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(shifted), nil
}

func shift(table alphabets.Table, text string, offset int) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		p, ok := table.PositionOf(text[i])
		if !ok {
			return "", &UnknownSymbolError{
				Char:   text[i],
				Offset: i,
			}
		}
		// n is in (-Size, Size); the doubled table absorbs the negative half
		n := (p + offset) % alphabets.Size
		b.WriteByte(table.CharAt(n + alphabets.Size))
	}
	return b.String(), nil
}
