package lower

import (
	"go/ast"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/capturelint/internal/decl"
	"github.com/mpyw/capturelint/internal/scope"
	"github.com/mpyw/capturelint/internal/tracker"
	"github.com/mpyw/capturelint/internal/typeutil"
)

// Options configures Build.
type Options struct {
	AncestorPolicy tracker.AncestorPolicy
}

type fieldKey struct {
	class *decl.Decl
	field *types.Var
}

type builder struct {
	info *types.Info
	res  *Result

	stack scope.Stack

	pkgs        map[*types.Package]*decl.Decl
	objs        map[types.Object]*decl.Decl
	methodExprs map[*types.Func]*decl.Decl
	fields      map[fieldKey]*decl.Decl
	this        map[*decl.Decl]*decl.Decl
	receivers   map[*types.Var]*decl.Decl
	lits        map[*ast.FuncLit]*decl.Decl
	localFuncs  map[*types.Var]*ast.FuncLit
	litNames    map[*ast.FuncLit]string
	anon        map[*decl.Decl]int

	funcs    map[*ast.FuncDecl]*Func
	recvName map[*ast.FuncDecl]string
}

// Build lowers every function literal of pkg.
func Build(pkg *types.Package, insp *inspector.Inspector, info *types.Info, opts Options) *Result {
	tab := decl.NewTable()
	b := &builder{
		info: info,
		res: &Result{
			Decls: tab,
			Arena: tracker.NewArena(opts.AncestorPolicy),
			byLit: make(map[*ast.FuncLit]*Plan),
		},
		pkgs:        make(map[*types.Package]*decl.Decl),
		objs:        make(map[types.Object]*decl.Decl),
		methodExprs: make(map[*types.Func]*decl.Decl),
		fields:      make(map[fieldKey]*decl.Decl),
		this:        make(map[*decl.Decl]*decl.Decl),
		receivers:   make(map[*types.Var]*decl.Decl),
		lits:        make(map[*ast.FuncLit]*decl.Decl),
		litNames:    make(map[*ast.FuncLit]string),
		anon:        make(map[*decl.Decl]int),
		funcs:       make(map[*ast.FuncDecl]*Func),
		recvName:    make(map[*ast.FuncDecl]string),
	}
	b.res.Package = b.pkgDecl(pkg)

	b.localFuncs = scanLocalFuncs(insp, info)
	for v, lit := range b.localFuncs {
		b.litNames[lit] = v.Name()
	}

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.FuncLit)(nil),
		(*ast.SelectorExpr)(nil),
		(*ast.Ident)(nil),
	}

	insp.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncDecl:
			if push {
				b.enterFuncDecl(n)
			} else {
				b.leaveFuncDecl(n)
			}
		case *ast.FuncLit:
			if push {
				b.enterFuncLit(n)
			} else {
				b.leaveFuncLit(n)
			}
		case *ast.SelectorExpr:
			if push {
				b.selector(n)
			}
		case *ast.Ident:
			if push && !isSelectorSel(n, stack) && !inReceiverList(stack) {
				b.ident(n)
			}
		}
		return true
	})

	return b.res
}

// isSelectorSel reports whether id is the Sel of its parent selector.
// Those are classified by the selector itself.
func isSelectorSel(id *ast.Ident, stack []ast.Node) bool {
	if len(stack) < 2 {
		return false
	}
	sel, ok := stack[len(stack)-2].(*ast.SelectorExpr)
	return ok && sel.Sel == id
}

// inReceiverList reports whether the node is part of a method's receiver
// declaration, which mentions the receiver type without using it.
func inReceiverList(stack []ast.Node) bool {
	for i := 0; i+1 < len(stack); i++ {
		if fd, ok := stack[i].(*ast.FuncDecl); ok && fd.Recv != nil && stack[i+1] == fd.Recv {
			return true
		}
	}
	return false
}

func (b *builder) enterFuncDecl(fd *ast.FuncDecl) {
	var (
		owner   *decl.Decl
		watched *decl.Decl
	)

	if fn, ok := b.info.Defs[fd.Name].(*types.Func); ok {
		owner = b.funcDecl(fn)
		if named := typeutil.ReceiverNamed(fn); named != nil {
			watched = b.classDecl(named.Obj())
		}
	}
	if owner == nil {
		// init functions and methods of invalid receivers have no usable object.
		owner = b.res.Decls.New(decl.Function, fd.Name.Name, b.res.Package, fd.Pos())
	}

	if watched != nil && fd.Recv != nil && len(fd.Recv.List) > 0 {
		for _, name := range fd.Recv.List[0].Names {
			if v, ok := b.info.Defs[name].(*types.Var); ok {
				b.receivers[v] = watched
				b.recvName[fd] = name.Name
			}
		}
	}

	id := b.res.Arena.New(owner, tracker.None, watched)
	b.stack.Push(&scope.Frame{Node: fd, Decl: owner, Tracker: id})

	f := &Func{
		Decl:    fd,
		Owner:   owner,
		Tracker: id,
	}
	b.funcs[fd] = f
	b.res.Funcs = append(b.res.Funcs, f)
}

func (b *builder) leaveFuncDecl(fd *ast.FuncDecl) {
	frame := b.stack.Pop(fd)
	f := b.funcs[fd]
	arena := b.res.Arena

	f.Receiver = arena.Watched(frame.Tracker)
	f.ReceiverTypeUsed = arena.IsUsed(frame.Tracker)
	f.Outer = arena.OuterClass(frame.Tracker)
	f.HasCaptured = arena.HasCaptured(frame.Tracker)
}

func (b *builder) enterFuncLit(lit *ast.FuncLit) {
	parentDecl := b.res.Package
	parentID := tracker.None
	if top := b.stack.Top(); top != nil {
		parentDecl = top.Decl
		parentID = top.Tracker
	}

	name, ok := b.litNames[lit]
	if !ok {
		b.anon[parentDecl]++
		name = "func" + strconv.Itoa(b.anon[parentDecl])
	}

	d := b.res.Decls.New(decl.Function, name, parentDecl, lit.Pos())
	b.lits[lit] = d

	id := b.res.Arena.New(d, parentID, nil)
	b.stack.Push(&scope.Frame{Node: lit, Decl: d, Tracker: id})

	p := &Plan{Lit: lit, Decl: d, Tracker: id, ReceiverName: b.enclosingReceiverName()}
	b.res.Plans = append(b.res.Plans, p)
	b.res.byLit[lit] = p
}

func (b *builder) enclosingReceiverName() string {
	for i := 0; ; i++ {
		frame := b.stack.At(i)
		if frame == nil {
			return ""
		}
		if fd, ok := frame.Node.(*ast.FuncDecl); ok {
			return b.recvName[fd]
		}
	}
}

func (b *builder) leaveFuncLit(lit *ast.FuncLit) {
	frame := b.stack.Pop(lit)
	p := b.res.byLit[lit]
	arena := b.res.Arena

	p.Outer = arena.OuterClass(frame.Tracker)
	p.Captures = arena.CollectCaptured(frame.Tracker, frame.Decl)
}

func (b *builder) trigger(d *decl.Decl) {
	top := b.stack.Top()
	if top == nil || d == nil {
		return
	}
	b.res.Arena.TriggerUsed(top.Tracker, d)
}

func (b *builder) ident(id *ast.Ident) {
	if b.stack.Top() == nil {
		return
	}
	if obj := b.info.Uses[id]; obj != nil {
		b.trigger(b.declOf(obj))
	}
}

func (b *builder) selector(se *ast.SelectorExpr) {
	if b.stack.Top() == nil {
		return
	}

	sel, ok := b.info.Selections[se]
	if !ok {
		// Qualified identifier.
		if obj := b.info.Uses[se.Sel]; obj != nil {
			b.trigger(b.declOf(obj))
		}
		return
	}

	switch sel.Kind() {
	case types.FieldVal:
		class := b.receiverClassOf(se.X)
		if class == nil {
			return
		}
		if field, ok := sel.Obj().(*types.Var); ok {
			b.trigger(b.fieldDecl(class, field))
		}
	case types.MethodVal:
		// Other values of the receiver type are captured through X.
		if b.receiverClassOf(se.X) == nil {
			return
		}
		if fn, ok := sel.Obj().(*types.Func); ok {
			b.trigger(b.funcDecl(fn))
		}
	case types.MethodExpr:
		if fn, ok := sel.Obj().(*types.Func); ok {
			b.trigger(b.methodExprDecl(fn))
		}
	}
}

func (b *builder) receiverClassOf(x ast.Expr) *decl.Decl {
	id, ok := ast.Unparen(x).(*ast.Ident)
	if !ok {
		return nil
	}
	v, ok := b.info.Uses[id].(*types.Var)
	if !ok {
		return nil
	}
	return b.receivers[v]
}

func (b *builder) declOf(obj types.Object) *decl.Decl {
	switch obj := obj.(type) {
	case *types.Var:
		if class, ok := b.receivers[obj]; ok {
			return b.thisOf(class)
		}
		if obj.IsField() {
			return nil
		}
		if typeutil.IsPackageLevel(obj) {
			return b.packageVarDecl(obj)
		}
		if lit, ok := b.localFuncs[obj]; ok {
			if d := b.lits[lit]; d != nil {
				return d
			}
		}
		return b.localDecl(obj)
	case *types.Func:
		return b.funcDecl(obj)
	case *types.TypeName:
		return b.classDecl(obj)
	}
	return nil
}

func (b *builder) pkgDecl(pkg *types.Package) *decl.Decl {
	if d, ok := b.pkgs[pkg]; ok {
		return d
	}
	d := b.res.Decls.New(decl.Package, pkg.Path(), nil, 0)
	b.pkgs[pkg] = d
	return d
}

func (b *builder) packageVarDecl(v *types.Var) *decl.Decl {
	if d, ok := b.objs[v]; ok {
		return d
	}
	d := b.res.Decls.New(decl.Property, v.Name(), b.pkgDecl(v.Pkg()), v.Pos())
	b.objs[v] = d
	return d
}

func (b *builder) localDecl(v *types.Var) *decl.Decl {
	if d, ok := b.objs[v]; ok {
		return d
	}
	frame := b.stack.Enclosing(v.Pos())
	if frame == nil {
		return nil
	}
	d := b.res.Decls.New(decl.Variable, v.Name(), frame.Decl, v.Pos())
	b.objs[v] = d
	return d
}

func (b *builder) funcDecl(fn *types.Func) *decl.Decl {
	fn = typeutil.OriginFunc(fn)
	if d, ok := b.objs[fn]; ok {
		return d
	}
	if fn.Pkg() == nil {
		return nil
	}

	var d *decl.Decl
	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		named := typeutil.ReceiverNamed(fn)
		if named == nil {
			return nil
		}
		class := b.classDecl(named.Obj())
		if class == nil {
			return nil
		}
		d = b.res.Decls.New(decl.Function, fn.Name(), class, fn.Pos())
		d.HasDispatchReceiver = true
	} else {
		d = b.res.Decls.New(decl.Function, fn.Name(), b.pkgDecl(fn.Pkg()), fn.Pos())
	}

	b.objs[fn] = d
	return d
}

func (b *builder) methodExprDecl(fn *types.Func) *decl.Decl {
	fn = typeutil.OriginFunc(fn)
	if d, ok := b.methodExprs[fn]; ok {
		return d
	}
	named := typeutil.ReceiverNamed(fn)
	if named == nil {
		return nil
	}
	class := b.classDecl(named.Obj())
	if class == nil {
		return nil
	}
	d := b.res.Decls.New(decl.Function, fn.Name(), class, fn.Pos())
	d.HasReceiverParam = true
	b.methodExprs[fn] = d
	return d
}

func (b *builder) classDecl(tn *types.TypeName) *decl.Decl {
	if _, ok := tn.Type().(*types.TypeParam); ok {
		return nil
	}
	tn = typeutil.OriginTypeName(tn)
	if tn.Pkg() == nil {
		return nil
	}
	if d, ok := b.objs[tn]; ok {
		return d
	}

	parent := b.pkgDecl(tn.Pkg())
	if !typeutil.IsPackageLevel(tn) {
		frame := b.stack.Enclosing(tn.Pos())
		if frame == nil {
			return nil
		}
		parent = frame.Decl
	}

	d := b.res.Decls.New(decl.Class, tn.Name(), parent, tn.Pos())
	b.objs[tn] = d
	return d
}

func (b *builder) fieldDecl(class *decl.Decl, field *types.Var) *decl.Decl {
	key := fieldKey{class: class, field: field}
	if d, ok := b.fields[key]; ok {
		return d
	}
	d := b.res.Decls.New(decl.Property, field.Name(), class, field.Pos())
	b.fields[key] = d
	return d
}

func (b *builder) thisOf(class *decl.Decl) *decl.Decl {
	if d, ok := b.this[class]; ok {
		return d
	}
	d := b.res.Decls.New(decl.PropertyAccessor, "this", class, class.Pos)
	b.this[class] = d
	return d
}
