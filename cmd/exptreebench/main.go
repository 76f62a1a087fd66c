// Command exptreebench drives the exponential tree index with synthetic
// workloads. It is a benchmark harness, one of the external collaborators
// spec.md explicitly keeps out of the core's scope.
package main

import "exptree/cmd/exptreebench/cmd"

func main() {
	cmd.Execute()
}
