package scope

import (
	"go/ast"
	"go/token"

	"github.com/mpyw/capturelint/internal/decl"
	"github.com/mpyw/capturelint/internal/tracker"
)

// Frame is a function being visited.
type Frame struct {
	Node    ast.Node // *ast.FuncDecl or *ast.FuncLit
	Decl    *decl.Decl
	Tracker tracker.ID
}

// Contains reports whether pos lies within the frame's syntax.
func (f *Frame) Contains(pos token.Pos) bool {
	return f.Node.Pos() <= pos && pos < f.Node.End()
}

// Stack is the chain of frames enclosing the current node, outermost first.
type Stack struct {
	frames []*Frame
}

// Push enters a function.
func (s *Stack) Push(f *Frame) {
	s.frames = append(s.frames, f)
}

// Pop leaves the innermost function. It panics if node is not the innermost
// frame's node.
func (s *Stack) Pop(node ast.Node) *Frame {
	top := s.Top()
	if top == nil || top.Node != node {
		panic("scope: unbalanced pop")
	}
	s.frames = s.frames[:len(s.frames)-1]
	return top
}

// Top returns the innermost frame, or nil outside any function.
func (s *Stack) Top() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// At returns the frame i levels out from the innermost one, or nil.
func (s *Stack) At(i int) *Frame {
	if i < 0 || i >= len(s.frames) {
		return nil
	}
	return s.frames[len(s.frames)-1-i]
}

// Len returns the nesting depth.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Enclosing returns the innermost frame containing pos, or nil.
func (s *Stack) Enclosing(pos token.Pos) *Frame {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].Contains(pos) {
			return s.frames[i]
		}
	}
	return nil
}
