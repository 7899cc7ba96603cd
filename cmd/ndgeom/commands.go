package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/ndarray"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func runStrides(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("strides", flag.ContinueOnError)
	layoutName := fs.String("layout", "row", "memory layout: row or col")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("expected exactly one SHAPE argument")
	}

	l, err := ndarray.ParseLayout(*layoutName)
	if err != nil {
		return err
	}
	shape, err := ndarray.ParseShape(fs.Arg(0))
	if err != nil {
		return err
	}
	g, err := ndarray.NewGeometry(shape, l)
	if err != nil {
		return err
	}
	klog.V(1).Infof("computed %s for layout %s", g, l)

	fmt.Fprintf(out, "shape:   %v\n", g.Shape())
	fmt.Fprintf(out, "strides: %v\n", g.Strides())
	fmt.Fprintf(out, "size:    %d\n", g.NumElements())
	return nil
}

func runOffset(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("offset", flag.ContinueOnError)
	layoutName := fs.String("layout", "row", "memory layout: row or col")
	shapeText := fs.String("shape", "", "array shape, e.g. 2,3,4")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("expected exactly one index argument")
	}

	l, err := ndarray.ParseLayout(*layoutName)
	if err != nil {
		return err
	}
	shape, err := ndarray.ParseShape(*shapeText)
	if err != nil {
		return err
	}
	indices, err := parseInts(fs.Arg(0))
	if err != nil {
		return err
	}
	g, err := ndarray.NewGeometry(shape, l)
	if err != nil {
		return err
	}

	offset, err := g.CheckedOffset(indices...)
	if err != nil {
		return err
	}
	klog.V(1).Infof("index %v in %s maps to %d", indices, g, offset)
	fmt.Fprintln(out, offset)
	return nil
}

func runUnravel(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("unravel", flag.ContinueOnError)
	shapeText := fs.String("shape", "", "array shape, e.g. 2,3,4")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("expected exactly one position argument")
	}

	shape, err := ndarray.ParseShape(*shapeText)
	if err != nil {
		return err
	}
	flat, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "position")
	}
	if flat < 0 || flat >= shape.NumElements() {
		return errors.Wrapf(ndarray.ErrIndexOutOfRange, "position %d for shape %v", flat, shape)
	}

	fmt.Fprintln(out, ndarray.UnravelIndex(flat, shape))
	return nil
}

func runBroadcast(args []string, out io.Writer) error {
	if len(args) != 2 {
		return errors.New("expected two SHAPE arguments")
	}
	a, err := ndarray.ParseShape(args[0])
	if err != nil {
		return err
	}
	b, err := ndarray.ParseShape(args[1])
	if err != nil {
		return err
	}

	result, err := ndarray.BroadcastShapes(a, b)
	if err != nil {
		return err
	}
	klog.V(1).Infof("broadcast %v with %v", a, b)
	fmt.Fprintln(out, result)
	return nil
}

// parseInts parses a comma-separated list of integers. Unlike ParseShape it
// accepts negative values so CheckedOffset can report them.
func parseInts(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, ",")
	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "index %d", i)
		}
		values[i] = v
	}
	return values, nil
}
