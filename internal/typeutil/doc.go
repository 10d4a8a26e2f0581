// Package typeutil provides go/types helpers for capturelint.
//
// # Overview
//
// The lowering pass needs to answer a few questions about objects that
// go/types does not answer directly:
//
//   - Which named type does a method belong to? ([ReceiverNamed])
//   - Is a variable declared at package level? ([IsPackageLevel])
//   - Which generic declaration does an instantiated object come from?
//     ([OriginFunc], [OriginTypeName])
//
// # Receiver Types
//
// Receivers may be pointers, and generic receivers are instantiated types.
// [ReceiverNamed] strips both:
//
//	func (s *Server) Run()        // Server
//	func (l List[T]) Len() int    // List (origin)
//	interface{ Run() }.Run        // nil: unnamed interface
package typeutil
