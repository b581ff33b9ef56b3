package factorial

import (
	"context"
	"errors"
	"strconv"
	"strings"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
)

// Command metadata for the catalog
const (
	Name    = "FactorialFinder"
	Index   = 1
	Summary = "Calculates the factorial of a number."

	Usage = `<FactorialFinder|1> [-i|--iterative|-r|--recursive] <number>
<FactorialFinder|1> <-d|--description>

	[-i|--iterative]: Calculates the factorial iteratively. This is the default when no flag is given.
	[-r|--recursive]: Calculates the factorial recursively.
	<number>: The number to calculate the factorial of.
	<-d|--description>: Prints the description of this challenge from the OCR 2016 Coding Challenges booklet.

Fails if <number> is negative, fractional, or greater than 20.`

	Description = `Challenge number 1: FactorialFinder
'The Factorial of a positive integer, n, is defined as the product of the sequence n, n-1, n-2, ...1 and the factorial of zero, 0, is defined as being 1. Solve this using both loops and recursion.'`
)

// Aliases lists the identifiers that resolve to FactorialFinder. 45 and
// FindTheFactorial are the booklet's duplicate of this challenge.
var Aliases = []string{"factorial", "ff", "1", "findthefactorial", "45"}

// Run is the FactorialFinder handler: [flag] <number>
func Run(_ context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", cberror.New("missing number").
			WithCode(cberror.CodeArgumentCount).
			WithOperation("factorial.Run")
	}

	compute := Iterative
	if len(args) > 1 {
		switch args[0] {
		case "-i", "--iterative":
		case "-r", "--recursive":
			compute = Recursive
		default:
			return "", cberror.Newf("first argument must be one of [-i|--iterative|-r|--recursive], but was %q", args[0]).
				WithCode(cberror.CodeInvalidArgument).
				WithOperation("factorial.Run").
				WithDetail("flag", args[0])
		}
	}

	raw := args[len(args)-1]
	n, err := strconv.ParseInt(raw, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return "", outOfRange(raw)
	}
	if err != nil {
		return "", cberror.Newf("last argument must be a whole number, but was %q", raw).
			WithCode(cberror.CodeInvalidNumber).
			WithOperation("factorial.Run").
			WithDetail("input", raw)
	}

	result, err := compute(n)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(result, 10), nil
}

// outOfRange maps a whole number beyond int64 to the error its sign implies
func outOfRange(raw string) error {
	if strings.HasPrefix(raw, "-") {
		return cberror.Newf("cannot compute the factorial of negative number %s", raw).
			WithCode(cberror.CodeNegativeInput).
			WithOperation("factorial.Run").
			WithDetail("input", raw)
	}
	return cberror.Newf("the factorial of %s is greater than 18,446,744,073,709,551,615 (input must be at most %d)", raw, MaxInput).
		WithCode(cberror.CodeOverflow).
		WithOperation("factorial.Run").
		WithDetail("input", raw)
}
