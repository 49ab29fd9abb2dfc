package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jdeltasync/hu01go/hu01"
)

const progName = "hu01dump"
const usageMessageRaw = `
Usage: hu01dump [-o FILE] [INPUT]

Decompresses an HU01 container read from INPUT (or standard input, if
omitted) and writes the recovered plaintext to FILE (or standard
output, if -o is omitted).
`

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

func run(in io.Reader, out io.Writer) error {
	w := hu01.NewWriter(out)

	buf := make([]byte, 32*1024)
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}

	return w.Close()
}

func main() {
	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	outPath := ourFlags.String("o", "", "write plaintext to FILE instead of standard output")
	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		os.Exit(64)
	}

	in := os.Stdin
	if ourFlags.NArg() > 0 {
		f, err := os.Open(ourFlags.Arg(0))
		if err != nil {
			exitError(err)
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			exitError(err)
		}
		defer f.Close()
		out = f
	}

	if err := run(in, out); err != nil {
		exitError(err)
	}
}
