// Package excluded is analyzed with -exclude=*_gen.go,legacy.go.
package excluded

func kept(n int) func() int {
	return func() int { return n } // want `closure lowering: captures=n`
}
