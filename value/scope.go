// ==============================================================================================
// FILE: value/scope.go
// ==============================================================================================
// PACKAGE: value (continued)
// PURPOSE: The scope-stack + this-stack model (spec §3/§4.8). Deliberately NOT the
//          environment-with-outer-pointer closure chain Eloquence's evaluator builds: a
//          function activation here pushes one fresh, parentless local scope, so a function
//          body can see its own locals and (through the identifier-resolution order in §4.6) the
//          current `this` and the global scope, but never an enclosing call's locals.
// ==============================================================================================

package value

import (
	"github.com/sawickiap/MinScriptLang-sub001/langerr"
	"github.com/sawickiap/MinScriptLang-sub001/token"
)

// DefaultMaxDepth is the call-stack depth limit spec §5 requires (100),
// overridable per Scopes instance (wired to the host's --max-call-depth
// flag).
const DefaultMaxDepth = 100

// ThisBinding is the per-call `this` value: absent, or an Object, or an
// Array (spec §3's "This binding").
type ThisBinding struct {
	Present bool
	Value   Value
}

// Scopes holds the global scope, the stack of local scopes, and the
// parallel this-stack, always kept at equal depth (invariant checked by
// callers pushing/popping in lockstep).
type Scopes struct {
	Global   *Object
	MaxDepth int

	locals []*Object
	thises []ThisBinding
}

func NewScopes() *Scopes {
	return &Scopes{Global: NewObject(), MaxDepth: DefaultMaxDepth}
}

// Depth returns the current local-scope stack depth (0 at top level).
func (s *Scopes) Depth() int { return len(s.locals) }

// Push creates a fresh local scope and this-binding for one call
// activation, failing with a stack-overflow ExecutionError if that would
// exceed MaxDepth. Callers must Pop unconditionally on every exit path.
func (s *Scopes) Push(place token.Place, this ThisBinding) error {
	if len(s.locals) >= s.MaxDepth {
		return langerr.NewExecutionError(place, "call stack overflow (exceeded %d activations)", s.MaxDepth)
	}
	s.locals = append(s.locals, NewObject())
	s.thises = append(s.thises, this)
	return nil
}

// Pop removes the innermost local scope and this-binding.
func (s *Scopes) Pop() {
	s.locals = s.locals[:len(s.locals)-1]
	s.thises = s.thises[:len(s.thises)-1]
}

// InCall reports whether any local scope is active.
func (s *Scopes) InCall() bool { return len(s.locals) > 0 }

// Local returns the innermost local scope, or nil at top level.
func (s *Scopes) Local() *Object {
	if len(s.locals) == 0 {
		return nil
	}
	return s.locals[len(s.locals)-1]
}

// This returns the innermost this-binding, or the absent binding at top
// level.
func (s *Scopes) This() ThisBinding {
	if len(s.thises) == 0 {
		return ThisBinding{}
	}
	return s.thises[len(s.thises)-1]
}
