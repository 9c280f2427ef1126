package sinks

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/reusee/pagehook/ciphers"
	"github.com/reusee/pagehook/payloads"
)

// Builtins returns the handlers every Dispatcher starts with.
func Builtins(decode ciphers.Decoder) map[string]payloads.Handler {
	return map[string]payloads.Handler{

		"echo": payloads.HandlerFunc(func(ctx *payloads.Context) error {
			_, err := io.WriteString(ctx.Output, strings.Join(ctx.Args, " ")+"\n")
			return err
		}),

		"print": payloads.HandlerFunc(func(ctx *payloads.Context) error {
			_, err := io.WriteString(ctx.Output, strings.Join(ctx.Args, ""))
			return err
		}),

		"log": payloads.HandlerFunc(func(ctx *payloads.Context) error {
			ctx.Logger.InfoContext(ctx, "payload log",
				"message", strings.Join(ctx.Args, " "),
				"depth", ctx.Depth,
			)
			return nil
		}),

		"date": payloads.HandlerFunc(func(ctx *payloads.Context) error {
			layout := time.RFC3339
			if len(ctx.Args) > 0 {
				layout = strings.Join(ctx.Args, " ")
			}
			_, err := io.WriteString(ctx.Output, time.Now().Format(layout))
			return err
		}),

		"stage": stage{
			decode: decode,
		},
	}
}

var errExpandOnly = errors.New("handler only expands")

// stage decodes a nested cipher literal: stage <cipher> <key>
type stage struct {
	decode ciphers.Decoder
}

var _ Expander = stage{}

func (s stage) Run(ctx *payloads.Context) error {
	return errExpandOnly
}

func (s stage) Expand(ctx *payloads.Context) (string, error) {
	if len(ctx.Args) != 2 {
		return "", fmt.Errorf("usage: stage <cipher> <key>, got %d arguments", len(ctx.Args))
	}
	key, err := strconv.Atoi(ctx.Args[1])
	if err != nil {
		return "", fmt.Errorf("bad key: %w", err)
	}
	return s.decode(ctx.Args[0], key)
}
