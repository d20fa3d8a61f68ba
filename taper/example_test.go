package taper_test

import (
	"fmt"

	"github.com/cwbudde/algo-geomag/taper"
)

func ExampleGenerate() {
	w := taper.Generate(taper.TypeHann, 5)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3], w[4])
	// Output:
	// 0.00 0.50 1.00 0.50 0.00
}

func ExampleApply2D() {
	data := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}
	_ = taper.Apply2D(taper.TypeHann, data, 3, 3)
	fmt.Printf("%.2f %.2f %.2f\n", data[3], data[4], data[5])
	// Output:
	// 0.00 1.00 0.00
}
