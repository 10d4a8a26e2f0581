package excluded

func legacy(a, b int) func() int {
	return func() int { return a * b }
}
