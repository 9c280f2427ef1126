package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/reusee/dscope"
	"github.com/reusee/pagehook/alphabets"
	"github.com/reusee/pagehook/ciphers"
	"github.com/reusee/pagehook/cmds"
	"github.com/reusee/pagehook/configs"
	"github.com/reusee/pagehook/hooks"
	"github.com/reusee/pagehook/lifecycles"
	"github.com/reusee/pagehook/modes"
	"github.com/reusee/pagehook/outputs"
	"github.com/reusee/pagehook/pageconfigs"
	"github.com/reusee/pagehook/serves"
	"github.com/reusee/pagehook/sinks"
	"github.com/reusee/pagehook/vars"
)

// action is set by the command and run after all flags are parsed
var action func(ctx context.Context, scope dscope.Scope) error

func init() {
	cmds.Define("encode", cmds.Func(func(key int, text string) {
		action = func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				encode ciphers.Encoder,
			) {
				var cipher string
				cipher, err = encode(text, key)
				if err == nil {
					fmt.Println(cipher)
				}
			})
			return
		}
	}).Args("key", "text").Desc("encode text with key"))

	cmds.Define("decode", cmds.Func(func(key int, cipher string) {
		action = func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				decode ciphers.Decoder,
			) {
				var text string
				text, err = decode(cipher, key)
				if err == nil {
					fmt.Println(text)
				}
			})
			return
		}
	}).Args("key", "cipher").Desc("decode cipher with key"))

	cmds.Define("check", cmds.Func(func() {
		action = func(ctx context.Context, scope dscope.Scope) error {
			sites, err := validate(scope)
			if err != nil {
				return err
			}
			fmt.Printf("%d call sites ok\n", len(sites))
			return nil
		}
	}).Desc("decode and parse every configured call site"))

	cmds.Define("handlers", cmds.Func(func() {
		action = func(ctx context.Context, scope dscope.Scope) error {
			scope.Call(func(
				dispatcher *sinks.Dispatcher,
			) {
				fmt.Println(strings.Join(dispatcher.Names(), "\n"))
			})
			return nil
		}
	}).Desc("list script handlers"))

	cmds.Define("fire", cmds.Func(func(event string, text *string) {
		action = func(ctx context.Context, scope dscope.Scope) (err error) {
			sites, err := validate(scope)
			if err != nil {
				return err
			}
			scope.Call(func(
				bus *hooks.Bus,
				install lifecycles.Install,
			) {
				if err = install(bus, sites); err != nil {
					return
				}
				var args []string
				if str := vars.DerefOrZero(text); str != "" {
					args = append(args, str)
				}
				stack := outputs.NewStack(os.Stdout)
				var out string
				out, err = bus.Apply(outputs.WithStack(ctx, stack), event, args...)
				if err == nil {
					fmt.Fprintln(stack, out)
				}
			})
			return
		}
	}).Args("event", "text").Desc("apply an event and print the result"))

	cmds.Define("serve", cmds.Func(func() {
		action = func(ctx context.Context, scope dscope.Scope) (err error) {
			if _, err := validate(scope); err != nil {
				return err
			}
			scope.Call(func(
				serve serves.Serve,
			) {
				err = serve(ctx)
			})
			return
		}
	}).Desc("serve events over http"))
}

// validate reports config problems as errors before any provider that
// panics on them is reached.
func validate(scope dscope.Scope) (sites pageconfigs.CallSites, err error) {
	scope.Call(func(
		loader configs.Loader,
	) {
		err = loader.Check()
	})
	if err != nil {
		return nil, err
	}
	scope.Call(func(
		order pageconfigs.AlphabetOrder,
		callSites pageconfigs.CallSites,
	) {
		sites = callSites
		_, err = alphabets.FromOrder(string(order))
	})
	if err != nil {
		return nil, err
	}
	scope.Call(func(
		check lifecycles.Check,
	) {
		err = check(sites)
	})
	if err != nil {
		return nil, err
	}
	return sites, nil
}

func main() {
	cmds.Execute(os.Args[1:])
	if action == nil {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForCommand(),
	).Fork(
		definitions,
	)

	if err := action(ctx, scope); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
