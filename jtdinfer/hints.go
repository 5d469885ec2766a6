package jtdinfer

// wildcard is the path segment that matches any property name or array
// index at its position.
const wildcard = "-"

// HintSet is an immutable set of hint paths, represented positionally: at
// any recursion depth it holds the suffix tails of the paths still in
// play. Construct one with [NewHintSet] and descend with [HintSet.Sub].
//
// A HintSet is cheap to copy: internally it is just a slice of tail
// slices referencing the caller's path storage, never a deep copy.
type HintSet struct {
	paths [][]string
}

// NewHintSet builds a [HintSet] from a list of hint paths. Each path is a
// sequence of segments; the wildcard segment ("-") matches any property
// name, and (because array indices are matched by stringifying the index)
// any array index too.
func NewHintSet(paths [][]string) HintSet {
	return HintSet{paths: paths}
}

// Sub descends the hint set by one path segment, returning the hint set
// that applies to the child position named key. A path survives into the
// result if its head segment equals key or is the wildcard; the head is
// then stripped.
func (h HintSet) Sub(key string) HintSet {
	var next [][]string

	for _, p := range h.paths {
		if len(p) == 0 {
			continue
		}

		if p[0] == wildcard || p[0] == key {
			next = append(next, p[1:])
		}
	}

	return HintSet{paths: next}
}

// IsActive reports whether any retained path is empty, i.e. the current
// position is a destination of at least one hint path.
func (h HintSet) IsActive() bool {
	for _, p := range h.paths {
		if len(p) == 0 {
			return true
		}
	}

	return false
}

// PeekActive returns the single remaining segment of the first retained
// path of length exactly 1, if any. Used only for the discriminator hint,
// which names a key rather than a position: a discriminator hint path
// like /t has length 1 at the object that owns the discriminator key, and
// PeekActive reveals "t" without descending into it.
//
// If more than one path has length 1, which one is returned is
// deterministic for a given construction order (first match wins) but
// otherwise unspecified, matching the source's HashMap/Vec iteration.
func (h HintSet) PeekActive() (string, bool) {
	for _, p := range h.paths {
		if len(p) == 1 {
			return p[0], true
		}
	}

	return "", false
}

// Hints bundles the three hint matchers an [InferredSchema] consults
// during [InferredSchema.Infer], plus the preferred numeric type.
//
// A Hints value is immutable; [Hints.Sub] returns a new value descended
// by one key, applying the same key to all three matchers.
type Hints struct {
	defaultNumType NumType
	enums          HintSet
	values         HintSet
	discriminator  HintSet
}

// NewHints constructs a [Hints] bundle.
func NewHints(defaultNumType NumType, enums, values, discriminator HintSet) Hints {
	return Hints{
		defaultNumType: defaultNumType,
		enums:          enums,
		values:         values,
		discriminator:  discriminator,
	}
}

// Sub descends all three matchers by key, returning the [Hints] applicable
// to the child position.
func (h Hints) Sub(key string) Hints {
	return Hints{
		defaultNumType: h.defaultNumType,
		enums:          h.enums.Sub(key),
		values:         h.values.Sub(key),
		discriminator:  h.discriminator.Sub(key),
	}
}

// IsEnumActive reports whether the enum form is forced at the current
// position.
func (h Hints) IsEnumActive() bool {
	return h.enums.IsActive()
}

// IsValuesActive reports whether the values (dictionary) form is forced
// at the current position.
func (h Hints) IsValuesActive() bool {
	return h.values.IsActive()
}

// PeekActiveDiscriminator returns the discriminator key forced at the
// current position, if any.
func (h Hints) PeekActiveDiscriminator() (string, bool) {
	return h.discriminator.PeekActive()
}

// DefaultNumType returns the preferred numeric type this Hints bundle was
// constructed with.
func (h Hints) DefaultNumType() NumType {
	return h.defaultNumType
}
