// Command capturelint reports how closures would be lowered into functions
// that take their captured state as explicit parameters.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/capturelint"
)

func main() {
	singlechecker.Main(capturelint.Analyzer)
}
