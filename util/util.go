package util

import "golang.org/x/exp/constraints"

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}

func Contains[A comparable](items []A, target A) bool {
	for _, v := range items {
		if v == target {
			return true
		}
	}
	return false
}
