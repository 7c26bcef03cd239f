// Command cartctl is a terminal storefront client. Each invocation opens a
// cart session, hydrates it from the API or the local store, applies one
// mutation and waits for the background writes before printing the cart.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, nil).Execute(); err != nil {
		os.Exit(1)
	}
}
