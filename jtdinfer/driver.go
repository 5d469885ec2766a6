package jtdinfer

import (
	"encoding/json"
	"fmt"
	"io"

	jtd "github.com/jsontypedef/json-typedef-go"
)

// Driver folds a stream of JSON documents, drawn from one or more readers
// in order, into a single running [InferredSchema] and projects the
// result. It is the thin, stateful shell around the pure core: everything
// else folds and projects without touching I/O.
//
// Driver folds every document from every reader into one accumulator, in
// reader order then document order within a reader: examples are folded
// one at a time, in the order supplied.
type Driver struct {
	hints     Hints
	inference InferredSchema
}

// NewDriver constructs a Driver starting from [UnknownSchema].
func NewDriver(hints Hints) *Driver {
	return &Driver{hints: hints, inference: UnknownSchema()}
}

// Feed decodes every top-level JSON document in r (there may be more than
// one, back to back, the way [encoding/json.Decoder] supports) and folds
// each into the running inference in document order.
func (d *Driver) Feed(r io.Reader) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	for {
		var v any

		err := dec.Decode(&v)
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}

		d.inference = d.inference.Infer(normalize(v), d.hints)
	}
}

// Schema projects the current inference to a [jtd.Schema]. It may be
// called at any point and does not consume the Driver; further [Driver.Feed]
// calls continue folding from the same accumulated state.
func (d *Driver) Schema() *jtd.Schema {
	return d.inference.Project(d.hints)
}

// normalize converts json.Number leaves (preserved by Feed's dec.UseNumber
// so large integers do not silently lose precision in transit) to float64,
// matching the f64-based [InferredNumber] domain.
func normalize(v any) any {
	switch x := v.(type) {
	case json.Number:
		f, _ := x.Float64()

		return f
	case map[string]any:
		for k, sub := range x {
			x[k] = normalize(sub)
		}

		return x
	case []any:
		for i, sub := range x {
			x[i] = normalize(sub)
		}

		return x
	default:
		return x
	}
}
