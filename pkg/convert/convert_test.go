package convert

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type point struct{ X, Y int }

type label string

func (l label) String() string { return "label:" + string(l) }

func TestToString(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	var nilPtr *point

	tests := []struct {
		name   string
		input  any
		want   string
		wantOk bool
	}{
		{name: "string", input: "text", want: "text", wantOk: true},
		{name: "bytes", input: []byte("raw"), want: "raw", wantOk: true},
		{name: "int", input: 418, want: "418", wantOk: true},
		{name: "float", input: 1.5, want: "1.5", wantOk: true},
		{name: "bool", input: true, want: "true", wantOk: true},
		{name: "nil", input: nil, want: "<nil>", wantOk: true},
		{name: "error", input: errors.New("boom"), want: "boom", wantOk: true},
		{name: "stringer", input: label("x"), want: "label:x", wantOk: true},
		{name: "time is a stringer", input: ts, want: ts.String(), wantOk: true},
		{name: "nil pointer", input: nilPtr, want: "<nil>", wantOk: true},
		{name: "map", input: map[string]int{"a": 1}, wantOk: false},
		{name: "slice", input: []int{1, 2}, wantOk: false},
		{name: "struct", input: point{1, 2}, wantOk: false},
		{name: "pointer to struct", input: &point{1, 2}, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToString(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"true", "TRUE", " yes ", "1", "on", "t"} {
		v, ok := ParseBool(in)
		assert.True(t, ok, in)
		assert.True(t, v, in)
	}
	for _, in := range []string{"false", "No", "0", "off", "F"} {
		v, ok := ParseBool(in)
		assert.True(t, ok, in)
		assert.False(t, v, in)
	}
	for _, in := range []string{"", "  ", "maybe", "2"} {
		_, ok := ParseBool(in)
		assert.False(t, ok, in)
	}
}

func TestDerefValue(t *testing.T) {
	p := &point{X: 1}
	pp := &p
	v := DerefValue(reflect.ValueOf(pp))
	assert.Equal(t, reflect.Struct, v.Kind())

	var nilPtr *point
	v = DerefValue(reflect.ValueOf(nilPtr))
	assert.Equal(t, reflect.Ptr, v.Kind())
	assert.True(t, v.IsNil())
}
