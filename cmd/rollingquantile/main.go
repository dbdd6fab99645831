// Command rollingquantile is a CLI front end for the rollingquantile library.
package main

import "github.com/xuestrange/rollingquantile/cmd/rollingquantile/cmd"

func main() {
	cmd.Execute()
}
