// SPDX-License-Identifier: MIT

// Command armaexpected generates the expected outputs of the linear-algebra
// test suite.
//
//	armaexpected list
//	armaexpected catalog GenRowVec
//	armaexpected run --config armaexpected.yaml GenMatNormal
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
