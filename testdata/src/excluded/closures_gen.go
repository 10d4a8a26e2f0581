package excluded

func generatedLike(n int) func() int {
	return func() int { return n }
}
