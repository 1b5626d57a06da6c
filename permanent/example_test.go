package permanent_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/photonq/hafnia/permanent"
)

// ExamplePermanent evaluates the permanent of a small real matrix.
//
// Scenario:
//
//	perm [[1,2],[3,4]] sums both permutations: 1·4 + 2·3 = 10.
//
// Complexity: O(n·2ⁿ) time, O(n) memory.
func ExamplePermanent() {
	a := mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})

	p, err := permanent.Permanent(a, &permanent.Options{Workers: 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("perm = %.0f\n", real(p))
	// Output:
	// perm = 10
}
