// Package main provides ndgeom, a CLI for inspecting array geometry.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"
)

const version = "v0.1.0"

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() { usage(os.Stderr) }
	flag.Parse()

	code := run(flag.Args(), os.Stdout)
	klog.Flush()
	os.Exit(code)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "ndgeom - array shape, stride and broadcast inspector")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                                     Show version")
	fmt.Fprintln(w, "  strides [-layout row|col] SHAPE             Print canonical strides and buffer size")
	fmt.Fprintln(w, "  offset [-layout row|col] -shape SHAPE IDX   Print the checked offset of an index")
	fmt.Fprintln(w, "  unravel -shape SHAPE N                      Print the row-major index of flat position N")
	fmt.Fprintln(w, "  broadcast SHAPE SHAPE                       Print the broadcast shape")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Shapes and indices are comma separated, e.g. 2,3,4.")
}

// run executes one command and returns the process exit code.
func run(args []string, out io.Writer) int {
	if len(args) == 0 {
		usage(out)
		return 2
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Fprintf(out, "ndgeom %s\n", version)
	case "strides":
		err = runStrides(args[1:], out)
	case "offset":
		err = runOffset(args[1:], out)
	case "unravel":
		err = runUnravel(args[1:], out)
	case "broadcast":
		err = runBroadcast(args[1:], out)
	default:
		klog.Errorf("unknown command %q", args[0])
		usage(out)
		return 2
	}

	if err != nil {
		klog.Errorf("%s: %v", args[0], err)
		return 1
	}
	return 0
}
