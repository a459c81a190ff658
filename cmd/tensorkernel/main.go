// Package main provides a small demo CLI for the tensor kernel.
package main

import (
	"fmt"
	"os"

	"github.com/latticework/tensorkernel/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("tensorkernel %s\n", version)
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "demo" {
		if err := runDemo(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("tensorkernel - a CPU tensor computation engine")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Run a small matmul + softmax demo")
}

func runDemo() error {
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	if err != nil {
		return err
	}
	b, err := tensor.FromSlice([]float64{5, 6, 7, 8}, tensor.Shape{2, 2})
	if err != nil {
		return err
	}

	product, err := tensor.MatMul(a, b, false, false)
	if err != nil {
		return err
	}
	fmt.Printf("matmul: %v\n", product.Data())

	probs, err := tensor.Softmax(product, -1)
	if err != nil {
		return err
	}
	fmt.Printf("softmax: %v\n", probs.Data())
	return nil
}
