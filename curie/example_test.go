package curie_test

import (
	"fmt"

	"github.com/cwbudde/algo-geomag/curie"
)

func ExampleParams_CurieDepth() {
	p := curie.Params{Beta: 3, Zt: 1.2, Dz: 9.8, C: 5}
	fmt.Printf("curie depth: %.1f km\n", p.CurieDepth())
	// Output:
	// curie depth: 11.0 km
}

func ExampleTanaka1999() {
	k := make([]float64, 40)
	phi := make([]float64, 40)
	for i := range k {
		k[i] = 0.05 + float64(i)*0.025
		phi[i] = 2 * (3 - 2.5*k[i])
	}

	res, err := curie.Tanaka1999(k, phi, [2]float64{0.4, 0.9}, [2]float64{0.05, 0.3})
	if err != nil {
		panic(err)
	}
	fmt.Printf("zt: %.2f km\n", res.Zt)
	// Output:
	// zt: 2.50 km
}
