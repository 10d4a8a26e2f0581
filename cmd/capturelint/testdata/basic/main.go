package main

import "fmt"

type Greeter struct{ greeting string }

func (g *Greeter) Greet(names []string, suffix string) {
	for _, name := range names {
		func() {
			fmt.Println(g.greeting, name, suffix)
		}()
	}
}

func main() {
	g := &Greeter{greeting: "hello"}
	g.Greet([]string{"a", "b"}, "!")
}
