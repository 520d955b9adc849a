package skiplist

import "fmt"

func ExampleSkipList_Insert() {
	set, _ := New(Ordered[int]())
	fmt.Println(set.Insert(3))
	fmt.Println(set.Insert(3))
	fmt.Println(set.Len())
	// Output:
	// true
	// false
	// 1
}

func ExampleSkipList_Contains() {
	set, _ := New(Ordered[string]())
	set.Insert("pear")
	set.Insert("apple")
	fmt.Println(set.Contains("apple"))
	fmt.Println(set.Contains("plum"))
	// Output:
	// true
	// false
}

func ExampleSkipList_Remove() {
	set, _ := New(Ordered[int]())
	set.Insert(1)
	set.Insert(2)
	fmt.Println(set.Remove(1))
	fmt.Println(set.Remove(1))
	fmt.Println(set.Len())
	// Output:
	// true
	// false
	// 1
}

func ExampleIterator() {
	set, _ := New(Ordered[int]())
	for _, key := range []int{5, 1, 9, 3} {
		set.Insert(key)
	}

	it := set.Iterator()
	for it.SeekToFirst(); it.Valid(); it.Next() {
		fmt.Print(it.Key(), " ")
	}
	fmt.Println()
	// Output: 1 3 5 9
}

func ExampleIterator_Seek() {
	set, _ := New(Ordered[int]())
	for _, key := range []int{10, 20, 30} {
		set.Insert(key)
	}

	it := set.Iterator()
	it.Seek(15)
	fmt.Println(it.Key())
	// Output: 20
}
