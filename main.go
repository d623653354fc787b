// Command corpuspipe builds a domain-tagged Wikipedia paragraph corpus.
package main

import "github.com/gaurav-prasanna/corpuspipe/cmd"

func main() {
	cmd.Execute()
}
