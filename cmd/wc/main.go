package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/busoc/wc"
)

func main() {
	flag.Parse()

	err := wc.Run(flag.Args(), os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
