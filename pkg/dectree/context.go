package dectree

// Context is the input record being classified: a bag of named,
// heterogeneously-typed attributes. The engine only reads it; the caller
// owns it and must not mutate it while an evaluation is in flight.
type Context map[string]any

// Get reads a typed attribute from the context. If the key is missing, or
// the stored value is not a T, the default is returned instead. A rule
// should never blow up because a caller sent a malformed record, so a bad
// read degrades to the default.
func Get[T any](ctx Context, key string, def T) T {
	raw, ok := ctx[key]
	if !ok {
		return def
	}
	val, ok := raw.(T)
	if !ok {
		return def
	}
	return val
}
