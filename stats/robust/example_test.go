package robust_test

import (
	"fmt"

	"github.com/cwbudde/algo-rednoise/stats/robust"
)

func ExampleMedian() {
	fmt.Println(robust.Median([]float64{3, 1, 100}))
	fmt.Println(robust.Median([]float64{4, 1, 3, 2}))
	// Output:
	// 3
	// 2.5
}
