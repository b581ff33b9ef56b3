// ============================================================================
// chbrowse - OCR Coding Challenge Browser
// ============================================================================
//
// Package:     factorial
// Description: Challenge 1, FactorialFinder. Iterative and recursive
//              factorial with 64-bit results.
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package factorial

import (
	"math/bits"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
)

// MaxInput is the largest n whose factorial fits in a uint64
const MaxInput = 20

// Iterative computes n! with a loop
func Iterative(n int64) (uint64, error) {
	if err := check(n, "factorial.Iterative"); err != nil {
		return 0, err
	}

	product := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		product *= i
	}
	return product, nil
}

// Recursive computes n! with an accumulator-passing recursion
func Recursive(n int64) (uint64, error) {
	if err := check(n, "factorial.Recursive"); err != nil {
		return 0, err
	}
	return recurse(uint64(n), 1)
}

func recurse(n, acc uint64) (uint64, error) {
	if n <= 1 {
		return acc, nil
	}
	hi, lo := bits.Mul64(n, acc)
	if hi != 0 {
		return 0, overflow(int64(n))
	}
	return recurse(n-1, lo)
}

func check(n int64, op string) error {
	if n < 0 {
		return cberror.Newf("cannot compute the factorial of negative number %d", n).
			WithCode(cberror.CodeNegativeInput).
			WithOperation(op).
			WithDetail("input", n)
	}
	if n > MaxInput {
		return overflow(n).WithOperation(op)
	}
	return nil
}

func overflow(n int64) *cberror.Error {
	return cberror.Newf("the factorial of %d is greater than 18,446,744,073,709,551,615 (input must be at most %d)", n, MaxInput).
		WithCode(cberror.CodeOverflow).
		WithDetail("input", n)
}
