package ciphers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pagehook/logs"
	"github.com/reusee/pagehook/modes"
	"github.com/reusee/pagehook/pageconfigs"
)

func TestModule(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return buf
		},
		func() pageconfigs.AlphabetOrder {
			return ""
		},
	).Call(func(
		encode Encoder,
		decode Decoder,
	) {
		cipher, err := encode("hello", 12)
		if err != nil {
			t.Fatal(err)
		}
		plain, err := decode(cipher, 12)
		if err != nil {
			t.Fatal(err)
		}
		if plain != "hello" {
			t.Fatalf("got %q", plain)
		}

		// failures are left to the caller to log
		_, err = decode("%zz", 1)
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("got %v", err)
		}
		if strings.Contains(buf.String(), "level=ERROR") {
			t.Fatalf("got %s", buf.String())
		}
	})
}
