package trie

import "fmt"

func Example() {
	t := New()
	for _, w := range []string{"Cat", "car", "cap", "dog"} {
		t.Insert(w)
	}

	results, _ := t.Suggest("ca", 20)
	fmt.Println(results)
	fmt.Println(t.Contains("CAT"), t.Contains("ca"))
	fmt.Println(t.Len(), t.Nodes())

	// Output:
	// [cap car cat]
	// true false
	// 4 9
}
