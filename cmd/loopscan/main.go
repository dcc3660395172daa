package main

import "github.com/claimsight/loopscan/cmd/loopscan/cmd"

func main() {
	cmd.Execute()
}
