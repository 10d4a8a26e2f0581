// Package configured is analyzed with testdata/capturelint.yml.
package configured

func reported(a int) func() int {
	return func() int { // want `closure lowering: captures=a`
		return a
	}
}
