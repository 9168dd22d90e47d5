// tokenise - colour tokens from design documents
//
// tokenise extracts the colours used in a design document, names them after
// a design-system convention and exports them as token files or variables.
package main

import "github.com/jmylchreest/tokenise/internal/cli"

func main() {
	cli.Execute()
}
