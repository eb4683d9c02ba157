package search_test

import (
	"fmt"

	"github.com/mlevan/wayfarer/search"
)

// ExampleSearch finds the cheapest route through a small flight network
// described as a plain neighbor table — no graph container involved.
func ExampleSearch() {
	fares := map[string][]search.Step[string]{
		"HEL": {{Node: "TXL", Cost: 120}, {Node: "WAW", Cost: 80}},
		"WAW": {{Node: "TXL", Cost: 30}, {Node: "LIS", Cost: 150}},
		"TXL": {{Node: "LIS", Cost: 90}},
	}

	res, err := search.Search("HEL",
		func(n string) []search.Step[string] { return fares[n] },
		func(n string) bool { return n == "LIS" },
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(res.Path, res.Cost)
	// Output: [HEL WAW TXL LIS] 200
}

// ExampleSearch_stateSpace searches a node universe that is never
// materialized: states are generated by the successor function on demand.
// Starting from 1, each state n reaches n+3 (cost 1) and n*2 (cost 2);
// the goal is any state divisible by 20.
func ExampleSearch_stateSpace() {
	res, err := search.Search(1,
		func(n int) []search.Step[int] {
			return []search.Step[int]{
				{Node: n + 3, Cost: 1},
				{Node: n * 2, Cost: 2},
			}
		},
		func(n int) bool { return n%20 == 0 },
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(res.Path, res.Cost)
	// Output: [1 4 7 10 20] 5
}

// ExampleSearchTo targets one fixed node instead of a predicate.
func ExampleSearchTo() {
	hops := map[string][]search.Step[string]{
		"a": {{Node: "b", Cost: 1}},
		"b": {{Node: "c", Cost: 1}},
	}

	if _, err := search.SearchTo("a", "z", func(n string) []search.Step[string] { return hops[n] }); err != nil {
		fmt.Println(err)
	}
	// Output: search: no path to a goal node
}
