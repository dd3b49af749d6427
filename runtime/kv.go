package runtime

import "github.com/puzpuzpuz/xsync/v3"

// KV is a concurrent key/value store shared between a Runtime's actor and
// whatever producers it drives, e.g. to pass connection-scoped metadata
// without threading it through every producer's constructor.
type KV struct {
	m *xsync.MapOf[string, any]
}

// NewKV returns an empty KV store.
func NewKV() *KV {
	return &KV{m: xsync.NewMapOf[string, any]()}
}

// Set stores value under key.
func (kv *KV) Set(key string, value any) { kv.m.Store(key, value) }

// Get returns the value stored under key, if any.
func (kv *KV) Get(key string) (any, bool) { return kv.m.Load(key) }

// Delete removes key.
func (kv *KV) Delete(key string) { kv.m.Delete(key) }

// Len reports how many keys are stored.
func (kv *KV) Len() int { return kv.m.Size() }

// registry tracks live Runtimes by name, so operational tooling can look
// one up (e.g. to read a Snapshot) without the caller threading a
// *Runtime handle through unrelated code paths. It holds `any` because a
// single map cannot name the type parameters of every Runtime instantiation
// that registers with it; Lookup recovers the concrete type via a type
// assertion on the caller's behalf.
var registry = xsync.NewMapOf[string, any]()

// Register makes rt discoverable under name. A later registration with
// the same name replaces the earlier one.
func Register[L, R, O any](name string, rt *Runtime[L, R, O]) { registry.Store(name, rt) }

// Unregister removes name from the registry.
func Unregister(name string) { registry.Delete(name) }

// Lookup returns the Runtime registered under name, if any. The caller
// must supply the same type parameters it registered with; a mismatch
// reports not found rather than panicking.
func Lookup[L, R, O any](name string) (*Runtime[L, R, O], bool) {
	v, ok := registry.Load(name)
	if !ok {
		return nil, false
	}
	rt, ok := v.(*Runtime[L, R, O])
	return rt, ok
}
