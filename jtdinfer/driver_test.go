package jtdinfer_test

import (
	"strings"
	"testing"

	jtd "github.com/jsontypedef/json-typedef-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jtdinfer/jtdinfer"
)

func TestDriverFeedsMultipleDocumentsFromOneReader(t *testing.T) {
	t.Parallel()

	hints := noHints()
	d := jtdinfer.NewDriver(hints)

	err := d.Feed(strings.NewReader(`{"foo":true,"bar":"xxx"}
{"foo":false,"bar":null,"baz":5}`))
	require.NoError(t, err)

	got := d.Schema()
	want := &jtd.Schema{
		AdditionalProperties: false,
		Properties: map[string]jtd.Schema{
			"foo": {Type: jtd.TypeBoolean},
			"bar": {Type: jtd.TypeString, Nullable: true},
		},
		OptionalProperties: map[string]jtd.Schema{
			"baz": {Type: jtd.TypeUint8},
		},
	}

	assert.Equal(t, want, got)
}

func TestDriverFeedAccumulatesAcrossMultipleCalls(t *testing.T) {
	t.Parallel()

	d := jtdinfer.NewDriver(noHints())

	require.NoError(t, d.Feed(strings.NewReader(`{"a":1}`)))
	require.NoError(t, d.Feed(strings.NewReader(`{"b":2}`)))

	got := d.Schema()
	assert.Nil(t, got.Properties)
	assert.Len(t, got.OptionalProperties, 2)
}

func TestDriverFeedRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	d := jtdinfer.NewDriver(noHints())

	err := d.Feed(strings.NewReader(`{"a":`))
	require.Error(t, err)
	assert.ErrorIs(t, err, jtdinfer.ErrInvalidJSON)
}

func TestDriverLargeIntegerPreservesPrecisionThroughFloat64(t *testing.T) {
	t.Parallel()

	d := jtdinfer.NewDriver(noHints())

	require.NoError(t, d.Feed(strings.NewReader(`{"n":4294967295}`)))

	got := d.Schema()
	require.NotNil(t, got.Properties)
	assert.Equal(t, jtd.Type(jtd.TypeUint32), got.Properties["n"].Type)
}
