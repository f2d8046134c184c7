package permutations_test

import (
	"fmt"

	permutations "github.com/AK1089/permutation-groups"
)

func ExampleParse() {
	p, err := permutations.Parse("(3412)")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(p.String())
	fmt.Println(p.Reduced())
	// Output:
	// (1234)
	// (1234)
}

func ExamplePerm_Mul() {
	sigma, _ := permutations.Parse("(1324)")
	tau, _ := permutations.Parse("(14)")

	fmt.Println(sigma.Mul(tau).Reduced())
	// Output: (243)
}

func ExamplePerm_Inverse() {
	sigma, _ := permutations.Parse("(1324)")

	fmt.Printf("order = %d\n", sigma.Order())
	fmt.Printf("inverse = %s\n", sigma.Inverse().Reduced())
	fmt.Printf("sign = %d\n", sigma.Sign())
	// Output:
	// order = 4
	// inverse = (1423)
	// sign = -1
}

func ExampleGenerate() {
	fourCycle, _ := permutations.Parse("(1234)")
	threeCycle, _ := permutations.Parse("(123)(4)")

	group := permutations.Generate([]permutations.Perm{fourCycle, threeCycle})
	fmt.Printf("|S4| = %d\n", len(group))

	even := 0
	for _, g := range group {
		if g.Sign() == 1 {
			even++
		}
	}
	fmt.Printf("|A4| = %d\n", even)
	// Output:
	// |S4| = 24
	// |A4| = 12
}
