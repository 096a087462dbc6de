package evaluator

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/value"
)

// seenCacheSize bounds the per-module memoization table with an LRU
// (grounded on Keyhole-Koro-InsightifyCore's use of
// github.com/hashicorp/golang-lru/v2 for its artifact cache) instead of an
// unbounded map: pathological modules with huge expression counts don't
// retain memory past module end. Ordinary modules never come close to
// evicting.
const seenCacheSize = 4096

// Evaluator reduces AST expressions to static values. It is strictly
// per-module — the memoization table is dropped at module end — so never
// share one Evaluator across modules.
type Evaluator struct {
	env      *Env
	fns      *FnMap
	seen     *lru.Cache[*ast.Expr, Outcome]
	visiting map[ast.Ref]bool

	// structuralErr holds the specific diagnostic a style-object-boundary
	// structural check (arity, spread/computed key, duplicate condition)
	// produced on the most recent evalCall of a recognized library thunk,
	// mirroring transform.Context's lastError/LastError pattern so a
	// driver can surface it instead of the generic NonStaticValue fallback.
	structuralErr *diag.Diagnostic
}

// LastError returns (and clears) the most specific diagnostic recorded by
// the last evalCall that deopted due to a failed structural check, or nil
// if none did.
func (ev *Evaluator) LastError() *diag.Diagnostic {
	d := ev.structuralErr
	ev.structuralErr = nil
	return d
}

func New(env *Env, fns *FnMap) *Evaluator {
	cache, err := lru.New[*ast.Expr, Outcome](seenCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which is a
		// compile-time constant here.
		panic(err)
	}
	return &Evaluator{env: env, fns: fns, seen: cache, visiting: make(map[ast.Ref]bool)}
}

// Evaluate reduces e to an Outcome: {confident, value, deopt}.
func (ev *Evaluator) Evaluate(e *ast.Expr) Outcome {
	if cached, ok := ev.seen.Get(e); ok {
		return cached
	}
	out := ev.evalUncached(e)
	ev.seen.Add(e, out)
	return out
}

func (ev *Evaluator) evalUncached(e *ast.Expr) Outcome {
	switch d := e.Data.(type) {
	case *ast.ENull:
		return Ok(value.Null())
	case *ast.EUndefined:
		return Ok(value.Undefined())
	case *ast.EBoolean:
		return Ok(value.Bool(d.Value))
	case *ast.ENumber:
		return Ok(value.Num(d.Value))
	case *ast.EString:
		return Ok(value.Str(d.Value))
	case *ast.EMissing:
		return Fail(e)
	case *ast.EFunctionLike:
		// An opaque residual: confidently "reduced" to itself, standing
		// in for things like a function identity this evaluator never
		// inlines. It can still be held in a map/array, just never
		// invoked unless the callee resolution in evalCall recognizes it
		// via FnMap instead of this path.
		return Ok(value.ResidualExpr(*e))
	case *ast.EIdentifier:
		return ev.evalIdentifier(e, d)
	case *ast.EUnary:
		return ev.evalUnary(d)
	case *ast.EBinary:
		return ev.evalBinary(e, d)
	case *ast.EIf:
		return ev.evalIf(d)
	case *ast.EDot:
		return ev.evalDot(e, d)
	case *ast.EIndex:
		return ev.evalIndex(e, d)
	case *ast.ETemplate:
		return ev.evalTemplate(e, d)
	case *ast.EArray:
		return ev.evalArray(e, d)
	case *ast.EObject:
		return ev.evalObject(e, d)
	case *ast.ECall:
		return ev.evalCall(e, d)
	case *ast.ESpread:
		// A spread only makes sense inside an array/object literal; seen
		// bare it cannot be reduced to a value of its own.
		return Fail(e)
	default:
		return Fail(e)
	}
}

func (ev *Evaluator) evalIdentifier(e *ast.Expr, d *ast.EIdentifier) Outcome {
	if ev.visiting[d.Ref] {
		// Design note "Cyclic and back references": treat a recursive
		// lookup as a deopt rather than recursing.
		return Fail(e)
	}
	if t, ok := ev.fns.ResolveIdentifier(d.Ref); ok {
		return Ok(value.Callable(t))
	}
	init, ok := ev.env.Lookup(d.Ref)
	if !ok {
		return Fail(e)
	}
	ev.visiting[d.Ref] = true
	out := ev.Evaluate(init)
	delete(ev.visiting, d.Ref)
	return out
}

func (ev *Evaluator) evalUnary(d *ast.EUnary) Outcome {
	inner := ev.Evaluate(&d.Value)
	if !inner.Confident {
		return inner
	}
	switch d.Op {
	case ast.UnOpNot:
		return Ok(value.Bool(!inner.Value.Truthy()))
	case ast.UnOpVoid:
		return Ok(value.Undefined())
	case ast.UnOpTypeof:
		return Ok(value.Str(typeOf(inner.Value)))
	case ast.UnOpNeg:
		n, ok := toNumber(inner.Value)
		if !ok {
			return Fail(&d.Value)
		}
		return Ok(value.Num(-n))
	case ast.UnOpPos:
		n, ok := toNumber(inner.Value)
		if !ok {
			return Fail(&d.Value)
		}
		return Ok(value.Num(n))
	case ast.UnOpBitwiseNot:
		n, ok := toInt32(inner.Value)
		if !ok {
			return Fail(&d.Value)
		}
		return Ok(value.Num(float64(^n)))
	default:
		return Fail(&d.Value)
	}
}

func typeOf(v value.Value) string {
	switch v.Kind() {
	case value.KindUndefined:
		return "undefined"
	case value.KindNull:
		return "object" // in(famous) JS quirk, preserved faithfully
	case value.KindBool:
		return "boolean"
	case value.KindNum:
		return "number"
	case value.KindStr:
		return "string"
	case value.KindCallable:
		return "function"
	default:
		return "object"
	}
}

func (ev *Evaluator) evalBinary(e *ast.Expr, d *ast.EBinary) Outcome {
	switch d.Op {
	case ast.BinOpLogicalAnd, ast.BinOpLogicalOr, ast.BinOpNullishCoalescing:
		return ev.evalLogical(d)
	}

	left := ev.Evaluate(&d.Left)
	if !left.Confident {
		return left
	}
	right := ev.Evaluate(&d.Right)
	if !right.Confident {
		return right
	}

	switch d.Op {
	case ast.BinOpAdd:
		return evalAdd(e, left.Value, right.Value)
	case ast.BinOpSub, ast.BinOpMul, ast.BinOpDiv, ast.BinOpRem, ast.BinOpPow:
		return evalArith(e, d.Op, left.Value, right.Value)
	case ast.BinOpShl, ast.BinOpShr, ast.BinOpUShr, ast.BinOpBitwiseAnd, ast.BinOpBitwiseOr, ast.BinOpBitwiseXor:
		return evalBitwise(e, d.Op, left.Value, right.Value)
	case ast.BinOpLt, ast.BinOpLe, ast.BinOpGt, ast.BinOpGe:
		return evalRelational(e, d.Op, left.Value, right.Value)
	case ast.BinOpStrictEq, ast.BinOpStrictNe:
		return Ok(value.Bool(strictEquals(left.Value, right.Value) == (d.Op == ast.BinOpStrictEq)))
	case ast.BinOpLooseEq, ast.BinOpLooseNe:
		eq, ok := looseEquals(left.Value, right.Value)
		if !ok {
			return Fail(e)
		}
		return Ok(value.Bool(eq == (d.Op == ast.BinOpLooseEq)))
	default:
		return Fail(e)
	}
}

// evalLogical implements the truth tables for &&, ||, ??. This is the ONE
// place confidence is allowed to recover after a branch is skipped:
// short-circuiting means the skipped branch's deopt never happened, so it
// must not taint the result.
func (ev *Evaluator) evalLogical(d *ast.EBinary) Outcome {
	left := ev.Evaluate(&d.Left)
	if !left.Confident {
		return left
	}

	var leftDecides bool
	switch d.Op {
	case ast.BinOpLogicalAnd:
		leftDecides = !left.Value.Truthy()
	case ast.BinOpLogicalOr:
		leftDecides = left.Value.Truthy()
	case ast.BinOpNullishCoalescing:
		leftDecides = !left.Value.IsNullish()
	}
	if leftDecides {
		return Ok(left.Value)
	}
	right := ev.Evaluate(&d.Right)
	if !right.Confident {
		return right
	}
	return Ok(right.Value)
}

func (ev *Evaluator) evalIf(d *ast.EIf) Outcome {
	test := ev.Evaluate(&d.Test)
	if !test.Confident {
		return test
	}
	if test.Value.Truthy() {
		return ev.Evaluate(&d.Yes)
	}
	return ev.Evaluate(&d.No)
}

func (ev *Evaluator) evalDot(e *ast.Expr, d *ast.EDot) Outcome {
	target := ev.Evaluate(&d.Target)
	if !target.Confident {
		return target
	}
	m, ok := target.Value.Map()
	if !ok {
		return Fail(e)
	}
	v, ok := m.GetStr(d.Name)
	if !ok {
		return Fail(e) // a missing key deopts rather than evaluating to undefined
	}
	return Ok(v)
}

func (ev *Evaluator) evalIndex(e *ast.Expr, d *ast.EIndex) Outcome {
	target := ev.Evaluate(&d.Target)
	if !target.Confident {
		return target
	}
	idx := ev.Evaluate(&d.Index)
	if !idx.Confident {
		return idx
	}
	if items, ok := target.Value.Vec(); ok {
		n, ok := idx.Value.Num()
		if !ok || n < 0 || int(n) >= len(items) || n != float64(int(n)) {
			return Fail(e)
		}
		return Ok(items[int(n)])
	}
	m, ok := target.Value.Map()
	if !ok {
		return Fail(e)
	}
	v, ok := m.Get(idx.Value)
	if !ok {
		return Fail(e)
	}
	return Ok(v)
}

func (ev *Evaluator) evalTemplate(e *ast.Expr, d *ast.ETemplate) Outcome {
	var sb []byte
	sb = append(sb, d.Quasis[0]...)
	for i, hole := range d.Exprs {
		out := ev.Evaluate(&hole)
		if !out.Confident {
			return out
		}
		s, ok := toStringForConcat(out.Value)
		if !ok {
			return Fail(e)
		}
		sb = append(sb, s...)
		sb = append(sb, d.Quasis[i+1]...)
	}
	return Ok(value.Str(string(sb)))
}

func (ev *Evaluator) evalArray(e *ast.Expr, d *ast.EArray) Outcome {
	items := make([]value.Value, 0, len(d.Items))
	for i := range d.Items {
		item := d.Items[i]
		if spread, ok := item.Data.(*ast.ESpread); ok {
			inner := ev.Evaluate(&spread.Value)
			if !inner.Confident {
				return inner
			}
			spreadItems, ok := inner.Value.Vec()
			if !ok {
				return Fail(e)
			}
			items = append(items, spreadItems...)
			continue
		}
		out := ev.Evaluate(&item)
		if !out.Confident {
			return out
		}
		items = append(items, out.Value)
	}
	return Ok(value.Vec(items))
}

func (ev *Evaluator) evalObject(e *ast.Expr, d *ast.EObject) Outcome {
	m := value.NewOrderedMap()
	for i := range d.Properties {
		p := d.Properties[i]
		if p.Kind == ast.PropertySpread {
			inner := ev.Evaluate(&p.Value)
			if !inner.Confident {
				return inner
			}
			spreadMap, ok := inner.Value.Map()
			if !ok {
				return Fail(e)
			}
			for _, entry := range spreadMap.Entries() {
				m.Set(entry.Key, entry.Value)
			}
			continue
		}
		keyOut := ev.Evaluate(&p.Key)
		if !keyOut.Confident {
			return keyOut
		}
		if _, ok := keyOut.Value.ToMapKey(); !ok {
			return Fail(e)
		}
		valOut := ev.Evaluate(&p.Value)
		if !valOut.Confident {
			return valOut
		}
		m.Set(keyOut.Value, valOut.Value)
	}
	return Ok(value.Map(m))
}

func (ev *Evaluator) evalCall(e *ast.Expr, d *ast.ECall) Outcome {
	thunk, ok := ev.resolveCallee(&d.Target)
	if !ok {
		return Fail(e)
	}
	if derr := validateStructuralArgs(thunk.Name, *e, d); derr != nil {
		ev.structuralErr = derr
		return Fail(e)
	}
	args := make([]value.Value, 0, len(d.Args))
	for i := range d.Args {
		arg := d.Args[i]
		if spread, ok := arg.Data.(*ast.ESpread); ok {
			inner := ev.Evaluate(&spread.Value)
			if !inner.Confident {
				return inner
			}
			spreadItems, ok := inner.Value.Vec()
			if !ok {
				return Fail(e)
			}
			args = append(args, spreadItems...)
			continue
		}
		out := ev.Evaluate(&arg)
		if !out.Confident {
			return out
		}
		args = append(args, out.Value)
	}
	result, ok := thunk.Invoke(args)
	if !ok {
		return Fail(e)
	}
	return Ok(result)
}

// IsTrackedCall reports whether e is a call expression whose callee
// resolves to a registered library function, without invoking it. A
// driver uses this to decide whether a deopt on e is a fatal diagnostic
// (a tracked library call that could not be reduced) or simply an
// ordinary expression this transform has no opinion about.
func (ev *Evaluator) IsTrackedCall(e *ast.Expr) bool {
	call, ok := e.Data.(*ast.ECall)
	if !ok {
		return false
	}
	_, ok = ev.resolveCallee(&call.Target)
	return ok
}

// resolveCallee implements the call-target rule: if the callee resolves
// to a callable registered in fns — as a bare identifier or as a member
// expression of a known library binding — return its thunk; otherwise the
// caller deopts.
func (ev *Evaluator) resolveCallee(target *ast.Expr) (value.Thunk, bool) {
	switch t := target.Data.(type) {
	case *ast.EIdentifier:
		return ev.fns.ResolveIdentifier(t.Ref)
	case *ast.EDot:
		if base, ok := t.Target.Data.(*ast.EIdentifier); ok {
			return ev.fns.ResolveMember(base.Ref, t.Name)
		}
	}
	return value.Thunk{}, false
}
