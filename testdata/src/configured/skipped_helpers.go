package configured

// Excluded by the config file.
func excluded(a int) func() int {
	return func() int { return a }
}
