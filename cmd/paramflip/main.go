package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/paramflip/internal/cli"
	"github.com/vvka-141/paramflip/pkg/paramflip"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(paramflip.ExitPanic)
		}
	}()

	if os.Getenv("PARAMFLIP_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if cli.IsLambda() {
		cli.StartLambda()
		return
	}

	if err := cli.Execute(); err != nil {
		os.Exit(paramflip.ExitCodeForError(err))
	}
}
