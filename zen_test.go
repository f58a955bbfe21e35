package zen

import (
	"fmt"
)

func ExampleNewSignal() {
	count := NewSignal(0)
	fmt.Println(count.Read())

	count.Write(10)
	fmt.Println(count.Read())

	// Output:
	// 0
	// 10
}

func ExampleNewComputed() {
	count := NewSignal(1)
	double := NewComputed(func() int {
		fmt.Println("doubling")
		return count.Read() * 2
	})

	fmt.Println(double.Read())
	fmt.Println(double.Read()) // cached

	count.Write(10)
	fmt.Println(double.Read())

	// Output:
	// doubling
	// 2
	// 2
	// doubling
	// 20
}

func ExampleNewEffect() {
	count := NewSignal(0)

	NewEffect(func() {
		fmt.Println("count is", count.Read())
	})

	count.Write(10)

	// Output:
	// count is 0
	// count is 10
}

func ExampleNewBatch() {
	a := NewSignal(1)
	b := NewSignal(2)

	NewEffect(func() {
		fmt.Println(a.Read() + b.Read())
	})

	NewBatch(func() {
		a.Write(10)
		b.Write(20)
	})

	// Output:
	// 3
	// 30
}
