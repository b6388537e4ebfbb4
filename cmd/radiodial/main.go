// Package main is the entry point of the radio dial.
//
// Build:
//
//	go build -o build/radiodial ./cmd/radiodial
//
// Run:
//
//	./build/radiodial --preset fm
package main

import "github.com/tejashwikalptaru/radiodial/internal/cli"

func main() {
	cli.Execute()
}
