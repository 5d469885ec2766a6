package jtdinfer

import (
	"sort"
	"strconv"
	"time"

	jtd "github.com/jsontypedef/json-typedef-go"
)

// kind identifies which variant of the closed [InferredSchema] tagged
// union a value holds.
type kind int

const (
	kindUnknown kind = iota
	kindAny
	kindBoolean
	kindNumber
	kindString
	kindTimestamp
	kindEnum
	kindArray
	kindProperties
	kindValues
	kindDiscriminator
	kindNullable
)

// InferredSchema is the inference lattice: a recursive abstract-domain
// value representing the narrowest guess consistent with every example
// folded into it so far. The zero value is not valid; start from
// [UnknownSchema].
//
// InferredSchema is immutable. [InferredSchema.Infer] consumes the
// receiver's logical value and returns a new one; it never mutates shared
// state, and every child is owned exclusively (no shared subtrees).
type InferredSchema struct {
	k kind

	number InferredNumber
	enum   map[string]struct{}

	// Array, Values, Nullable all use child.
	child *InferredSchema

	required map[string]InferredSchema
	optional map[string]InferredSchema

	discriminator string
	mapping       map[string]InferredSchema
}

// UnknownSchema is the bottom of the lattice: no examples have been seen
// at this position yet.
func UnknownSchema() InferredSchema {
	return InferredSchema{k: kindUnknown}
}

func anySchema() InferredSchema {
	return InferredSchema{k: kindAny}
}

func booleanSchema() InferredSchema {
	return InferredSchema{k: kindBoolean}
}

func numberSchema(n InferredNumber) InferredSchema {
	return InferredSchema{k: kindNumber, number: n}
}

func stringSchema() InferredSchema {
	return InferredSchema{k: kindString}
}

func timestampSchema() InferredSchema {
	return InferredSchema{k: kindTimestamp}
}

func enumSchema(values map[string]struct{}) InferredSchema {
	return InferredSchema{k: kindEnum, enum: values}
}

func arraySchema(child InferredSchema) InferredSchema {
	return InferredSchema{k: kindArray, child: &child}
}

func propertiesSchema(required, optional map[string]InferredSchema) InferredSchema {
	return InferredSchema{k: kindProperties, required: required, optional: optional}
}

func valuesSchema(child InferredSchema) InferredSchema {
	return InferredSchema{k: kindValues, child: &child}
}

func discriminatorSchema(tag string, mapping map[string]InferredSchema) InferredSchema {
	return InferredSchema{k: kindDiscriminator, discriminator: tag, mapping: mapping}
}

func nullableSchema(inner InferredSchema) InferredSchema {
	return InferredSchema{k: kindNullable, child: &inner}
}

// isRFC3339 is the boundary predicate an external collaborator is assumed
// to supply. time.RFC3339 via the standard library is what every
// timestamp-handling file in this codebase's lineage already uses, so it
// serves that role directly rather than pulling in a third-party parser
// for a one-line check.
func isRFC3339(s string) bool {
	_, err := time.Parse(time.RFC3339, s)

	return err == nil
}

// Infer folds one example value into the receiver and returns the widened
// schema. value must be one of nil, bool, float64, string, []any, or
// map[string]any, the JSON value domain an external JSON parser is
// assumed to supply.
//
// The dispatch on (current, incoming) follows a fixed rule order: null
// handling first, then the Unknown/hint-consulting rules, then Any, then
// each primitive's own-kind/else-Any pair.
func (s InferredSchema) Infer(value any, hints Hints) InferredSchema {
	if value == nil {
		if s.k == kindNullable {
			return s
		}

		return nullableSchema(s)
	}

	if s.k == kindNullable {
		return nullableSchema(s.child.Infer(value, hints))
	}

	switch s.k {
	case kindUnknown:
		return s.inferUnknown(value, hints)
	case kindAny:
		return s
	case kindBoolean:
		if _, ok := value.(bool); ok {
			return s
		}

		return anySchema()
	case kindNumber:
		if n, ok := asFloat64(value); ok {
			return numberSchema(s.number.Observe(n))
		}

		return anySchema()
	case kindTimestamp:
		if str, ok := value.(string); ok {
			if isRFC3339(str) {
				return s
			}

			return stringSchema()
		}

		return anySchema()
	case kindString:
		if _, ok := value.(string); ok {
			return s
		}

		return anySchema()
	case kindEnum:
		if str, ok := value.(string); ok {
			next := cloneStringSet(s.enum)
			next[str] = struct{}{}

			return enumSchema(next)
		}

		return anySchema()
	case kindArray:
		vals, ok := value.([]any)
		if !ok {
			return anySchema()
		}

		return arraySchema(foldArray(*s.child, vals, hints))
	case kindProperties:
		obj, ok := value.(map[string]any)
		if !ok {
			return anySchema()
		}

		return s.inferProperties(obj, hints)
	case kindValues:
		obj, ok := value.(map[string]any)
		if !ok {
			return anySchema()
		}

		return valuesSchema(updateValuesChild(*s.child, obj, hints))
	case kindDiscriminator:
		obj, ok := value.(map[string]any)
		if !ok {
			return anySchema()
		}

		return s.inferDiscriminator(obj, hints)
	}

	return anySchema()
}

// inferUnknown implements the lattice bottom's widening rules: this is
// the only place hints take effect, because every other rule has already
// committed to a shape.
func (s InferredSchema) inferUnknown(value any, hints Hints) InferredSchema {
	switch v := value.(type) {
	case bool:
		return booleanSchema()
	case float64:
		return numberSchema(NewInferredNumber().Observe(v))
	case string:
		if hints.IsEnumActive() {
			return enumSchema(map[string]struct{}{v: {}})
		}

		if isRFC3339(v) {
			return timestampSchema()
		}

		return stringSchema()
	case []any:
		return arraySchema(foldArray(UnknownSchema(), v, hints))
	case map[string]any:
		return inferUnknownObject(v, hints)
	}

	return anySchema()
}

func inferUnknownObject(obj map[string]any, hints Hints) InferredSchema {
	if hints.IsValuesActive() {
		return valuesSchema(newValuesChild(obj, hints))
	}

	if tag, ok := hints.PeekActiveDiscriminator(); ok {
		if mappingKey, ok := obj[tag]; ok {
			if t, ok := mappingKey.(string); ok {
				rest := make(map[string]any, len(obj)-1)
				for k, v := range obj {
					if k == tag {
						continue
					}

					rest[k] = v
				}

				inner := UnknownSchema().Infer(rest, hints)

				return discriminatorSchema(tag, map[string]InferredSchema{t: inner})
			}
		}
	}

	required := make(map[string]InferredSchema, len(obj))
	for k, v := range obj {
		required[k] = UnknownSchema().Infer(v, hints.Sub(k))
	}

	return propertiesSchema(required, map[string]InferredSchema{})
}

func foldArray(start InferredSchema, vals []any, hints Hints) InferredSchema {
	acc := start
	for i, v := range vals {
		acc = acc.Infer(v, hints.Sub(indexKey(i)))
	}

	return acc
}

// newValuesChild builds the child of a freshly created Values form: a true
// join across every key of obj, each descended by its own key via
// hints.Sub. This is the Unknown-to-Values creation rule, which folds
// properly; the quirk described below does not apply here.
func newValuesChild(obj map[string]any, hints Hints) InferredSchema {
	acc := UnknownSchema()
	for k, v := range obj {
		acc = acc.Infer(v, hints.Sub(k))
	}

	return acc
}

// updateValuesChild reproduces the Values update rule exactly, including
// the documented quirk: each value is folded into a fresh Unknown rather
// than into prior, so only the *last* key's inference survives (prior is
// kept only when obj has no keys at all). This is faithful to the
// upstream source's semantics even though it discards information a true
// join would keep.
func updateValuesChild(prior InferredSchema, obj map[string]any, hints Hints) InferredSchema {
	acc := prior
	for k, v := range obj {
		acc = UnknownSchema().Infer(v, hints.Sub(k))
	}

	return acc
}

func (s InferredSchema) inferProperties(obj map[string]any, hints Hints) InferredSchema {
	required := make(map[string]InferredSchema, len(s.required))
	optional := make(map[string]InferredSchema, len(s.optional))

	for k, v := range s.required {
		required[k] = v
	}

	for k, v := range s.optional {
		optional[k] = v
	}

	for k, sub := range required {
		if _, present := obj[k]; !present {
			optional[k] = sub
			delete(required, k)
		}
	}

	for k, v := range obj {
		switch {
		case mapHas(required, k):
			required[k] = required[k].Infer(v, hints.Sub(k))
		case mapHas(optional, k):
			optional[k] = optional[k].Infer(v, hints.Sub(k))
		default:
			optional[k] = UnknownSchema().Infer(v, hints.Sub(k))
		}
	}

	return propertiesSchema(required, optional)
}

func (s InferredSchema) inferDiscriminator(obj map[string]any, hints Hints) InferredSchema {
	mappingKey, present := obj[s.discriminator]
	if !present {
		return anySchema()
	}

	t, ok := mappingKey.(string)
	if !ok {
		return anySchema()
	}

	rest := make(map[string]any, len(obj)-1)
	for k, v := range obj {
		if k == s.discriminator {
			continue
		}

		rest[k] = v
	}

	branch, ok := s.mapping[t]
	if !ok {
		branch = UnknownSchema()
	}

	mapping := make(map[string]InferredSchema, len(s.mapping))
	for k, v := range s.mapping {
		mapping[k] = v
	}

	mapping[t] = branch.Infer(rest, hints)

	return discriminatorSchema(s.discriminator, mapping)
}

// Project emits the JTD schema this InferredSchema has inferred so far.
func (s InferredSchema) Project(hints Hints) *jtd.Schema {
	switch s.k {
	case kindUnknown, kindAny:
		return &jtd.Schema{}
	case kindBoolean:
		return &jtd.Schema{Type: jtd.TypeBoolean}
	case kindNumber:
		return &jtd.Schema{Type: s.number.Project(hints.DefaultNumType())}
	case kindString:
		return &jtd.Schema{Type: jtd.TypeString}
	case kindTimestamp:
		return &jtd.Schema{Type: jtd.TypeTimestamp}
	case kindEnum:
		return &jtd.Schema{Enum: sortedKeys(s.enum)}
	case kindArray:
		elements := s.child.Project(hints)

		return &jtd.Schema{Elements: elements}
	case kindProperties:
		out := &jtd.Schema{AdditionalProperties: false}

		if len(s.required) > 0 {
			out.Properties = projectMap(s.required, hints)
		}

		if len(s.optional) > 0 {
			out.OptionalProperties = projectMap(s.optional, hints)
		}

		return out
	case kindValues:
		return &jtd.Schema{Values: s.child.Project(hints)}
	case kindDiscriminator:
		// Branches are keyed by the tag's observed value, not a path
		// segment, so (matching the upstream source) hints are passed
		// through unchanged rather than descended by branch key.
		mapping := make(map[string]jtd.Schema, len(s.mapping))
		for k, v := range s.mapping {
			mapping[k] = *v.Project(hints)
		}

		return &jtd.Schema{
			Discriminator: s.discriminator,
			Mapping:       mapping,
		}
	case kindNullable:
		return projectNullable(*s.child, hints)
	}

	return &jtd.Schema{}
}

// projectNullable implements the Nullable collapse: project the
// inner schema, then set its nullable flag, leaving the empty form alone
// (it already accepts null). Because the inner projection already folds
// in any nullable flag of its own, a Nullable(Nullable(x)) collapses for
// free; there is no special case to write.
func projectNullable(inner InferredSchema, hints Hints) *jtd.Schema {
	projected := inner.Project(hints)
	if isEmptySchema(projected) {
		return projected
	}

	projected.Nullable = true

	return projected
}

func isEmptySchema(s *jtd.Schema) bool {
	return s.Type == "" &&
		s.Enum == nil &&
		s.Elements == nil &&
		s.Properties == nil &&
		s.OptionalProperties == nil &&
		s.Values == nil &&
		s.Discriminator == "" &&
		s.Ref == nil
}

func projectMap(m map[string]InferredSchema, hints Hints) map[string]jtd.Schema {
	out := make(map[string]jtd.Schema, len(m))
	for k, v := range m {
		out[k] = *v.Project(hints.Sub(k))
	}

	return out
}

func mapHas(m map[string]InferredSchema, k string) bool {
	_, ok := m[k]

	return ok
}

func cloneStringSet(s map[string]struct{}) map[string]struct{} {
	next := make(map[string]struct{}, len(s)+1)
	for k := range s {
		next[k] = struct{}{}
	}

	return next
}

func sortedKeys(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}

func asFloat64(value any) (float64, bool) {
	n, ok := value.(float64)

	return n, ok
}

func indexKey(i int) string {
	return strconv.Itoa(i)
}
