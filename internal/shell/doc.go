/*
Package shell is the challenge browser front end.

Input lines are split by Tokenize, then handed to a Dispatcher. The
Dispatcher recognizes the browser meta-commands (help, list, exit and
history), the -d and -h flags that show a challenge's description or usage,
and otherwise resolves, validates and runs a challenge from the registry.
Shell wraps a Dispatcher in a read-dispatch-print loop.

	d := shell.NewDispatcher(reg, shell.Options{})
	res, err := d.Dispatch(ctx, `factorial -r 5`)
	// res.Kind == shell.ResultOutput, res.Output == "120"
*/
package shell
