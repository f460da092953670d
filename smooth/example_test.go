package smooth_test

import (
	"fmt"

	"berkotech.co/smoothplot/smooth"
)

func ExampleFit() {
	opts := smooth.DefaultOptions()
	opts.Method = smooth.Linear

	curve, err := smooth.Fit([]float64{3, 0, 2, 1}, []float64{7, 1, 5, 3}, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("y = %.2f + %.2fx\n", curve.Coefficients[0], curve.Coefficients[1])
	fmt.Println(curve.X)
	// Output:
	// y = 1.00 + 2.00x
	// [0 1 2 3]
}

func ExampleParseMethod() {
	_, err := smooth.ParseMethod("kernel")
	fmt.Println(err)
	// Output:
	// smooth: unknown smoother: "kernel"
}
