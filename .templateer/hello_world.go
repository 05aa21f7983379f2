package templates

// Template is a complete program with nothing to fill in.
const Template = `package main

import "fmt"

func main() {
	fmt.Println("Hello, world!")
}
`
