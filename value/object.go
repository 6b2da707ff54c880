// ==============================================================================================
// FILE: value/object.go
// ==============================================================================================
package value

// Object is a shared-mutable string-keyed map (spec §3). It also backs the
// global scope and every local scope — a scope is simply an Object used as
// a variable bag. Assigning null to a key removes it; no key ever maps to
// null (invariant enforced by Set, not by the caller).
type Object struct {
	entries map[string]Value
}

func NewObject() *Object {
	return &Object{entries: make(map[string]Value)}
}

// Get returns the value bound to key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Set upserts key, or removes it when v is null, preserving the
// no-key-maps-to-null invariant. Non-null values are passed through
// cloneForStore so that string members copy-on-store like any other
// assignment target.
func (o *Object) Set(key string, v Value) {
	if v.IsNull() {
		delete(o.entries, key)
		return
	}
	o.entries[key] = cloneForStore(v)
}

// Delete unconditionally removes key. (Class-literal null entries applied
// against a copied base go through Set, which removes a key on null.)
func (o *Object) Delete(key string) {
	delete(o.entries, key)
}

func (o *Object) Count() int { return len(o.entries) }

// Keys returns a snapshot of the current key set. Callers that range over
// an object while running script code (range-for) must take this snapshot once up
// front, since Go map iteration order is randomized and the language
// leaves object iteration order as "whatever the underlying map yields"
// (see the Open Question decision in DESIGN.md): snapshotting once makes
// that single arbitrary order observable and stable for the duration of
// the loop, rather than re-randomized or disturbed by concurrent mutation.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.entries))
	for k := range o.entries {
		keys = append(keys, k)
	}
	return keys
}

// ShallowCopy returns a new Object with the same key/value pairs; the
// values themselves are not deep-copied (Object/Array members stay shared,
// matching spec §4.10's "entries share values but the outer object is
// new"), while String members go through cloneForStore like any other store.
func (o *Object) ShallowCopy() *Object {
	cp := NewObject()
	for k, v := range o.entries {
		cp.entries[k] = cloneForStore(v)
	}
	return cp
}
