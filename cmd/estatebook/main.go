// Command estatebook manages a book of buyers and a book of properties
// for sale.
package main

import "github.com/mesh-intelligence/estatebook/internal/cli"

func main() {
	cli.Execute()
}
