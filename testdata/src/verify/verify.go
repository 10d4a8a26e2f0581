// Package verify contains closures whose capture sets agree with their SSA
// free variables (-verify-ssa). No diagnostics are expected.
package verify

type Conn struct{ addr string }

func (c *Conn) send(string) {}

func (c *Conn) Loop(msgs []string) {
	for _, m := range msgs {
		go func() {
			c.send(m)
		}()
	}
}

func adder(base int) func(int) int {
	total := base
	return func(n int) int {
		total += n
		return total
	}
}

func nested(x int) func() func() int {
	return func() func() int {
		y := x * 2
		return func() int { return x + y }
	}
}

func local() int {
	square := func(v int) int { return v * v }
	sum := func(a, b int) int { return square(a) + square(b) }
	return sum(1, 2)
}

func switched(v any) func() int {
	switch x := v.(type) {
	case int:
		return func() int { return x }
	}
	return nil
}
