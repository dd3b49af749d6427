/*
 * a basic example for wye usage
 */
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hipjim/wye/combinator"
	"github.com/hipjim/wye/runtime"
	"github.com/hipjim/wye/stream"
)

var (
	opt_n    = flag.Int("n", 10, "how many increasing ints each side produces")
	opt_mode = flag.String("mode", "merge", "program to run: merge, bounded, yip")
)

func main() {
	flag.Parse()

	left := make([]int, *opt_n)
	for i := range left {
		left[i] = i
	}
	right := make([]int, *opt_n)
	for i := range right {
		right[i] = (i + 1) * 100
	}

	var prog = combinator.Merge[int]()
	switch *opt_mode {
	case "bounded":
		progB := combinator.BoundedQueue[int, int](2)
		rt, err := runtime.New(progB, runtime.FromSlice(left), runtime.FromSlice(right), runtime.DefaultOptions)
		must(err)
		run(rt)
		return
	case "yip":
		progY := combinator.YipWithL(2, func(l, r int) int { return l + r })
		rt, err := runtime.New(progY, runtime.FromSlice(left), runtime.FromSlice(right), runtime.DefaultOptions)
		must(err)
		run(rt)
		return
	}

	rt, err := runtime.New(prog, runtime.FromSlice(left), runtime.FromSlice(right), runtime.DefaultOptions)
	must(err)
	run(rt)
}

func run(rt *runtime.Runtime[int, int, int]) {
	down, err := stream.New(rt)
	must(err)
	values, err := stream.Drain(down)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stream ended with error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%v\n", values)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
