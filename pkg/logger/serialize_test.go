package logger

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

func TestSerializeObject_RoundTrip(t *testing.T) {
	obj := response{
		StatusCode: 200,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       `{"ok":true} <b>&</b>`,
	}

	for _, pretty := range []bool{true, false} {
		out := serializeObject(obj, pretty)

		var got response
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		if diff := cmp.Diff(obj, got); diff != "" {
			t.Errorf("pretty=%v round trip mismatch (-want +got):\n%s", pretty, diff)
		}
		assert.False(t, strings.HasSuffix(out, "\n"))
		assert.Contains(t, out, "<b>&</b>", "HTML must not be escaped")
		assert.Equal(t, pretty, strings.Contains(out, "\n"))
	}
}

func TestSerializeObject_Pretty(t *testing.T) {
	assert.Equal(t, teapotPretty, serializeObject(teapot, true))
	assert.Equal(t, `{"message":"I'm a teapot","statusCode":418}`, serializeObject(teapot, false))
	assert.Equal(t, "{}", serializeObject(map[string]any{}, true))
	assert.Equal(t, "[\n  1,\n  2\n]", serializeObject([]int{1, 2}, true))
}

func TestSerializeObject_Fallback(t *testing.T) {
	assert.Equal(t, "{Name:x}", serializeObject(failingMarshaler{Name: "x"}, false))
	assert.Equal(t, "{}", serializeObject(panickingMarshaler{}, true))

	cyclic := &node{Name: "loop"}
	cyclic.Next = cyclic
	out := serializeObject(cyclic, false)
	assert.True(t, strings.HasPrefix(out, "<*logger.node: json: unsupported value: encountered a cycle"), out)

	selfMap := map[string]any{"name": "loop"}
	selfMap["self"] = selfMap
	out = serializeObject(selfMap, true)
	assert.True(t, strings.HasPrefix(out, "<map[string]interface {}: "), out)
	assert.Contains(t, out, "cycle")

	selfSlice := []any{"loop", nil}
	selfSlice[1] = selfSlice
	assert.True(t, strings.HasPrefix(serializeObject(selfSlice, false), "<[]interface {}: "))
}

func TestJoinObject(t *testing.T) {
	assert.Equal(t, "Formatted {}", joinObject("Formatted ", "{}"))
	assert.Equal(t, "Formatted {}", joinObject("Formatted", "{}"))
	assert.Equal(t, "Formatted\t{}", joinObject("Formatted\t", "{}"))
	assert.Equal(t, "{}", joinObject("", "{}"))
}

func TestMessageString(t *testing.T) {
	assert.Equal(t, "text", messageString("text"))
	assert.Equal(t, "3.5", messageString(3.5))
	assert.Equal(t, `["a","b"]`, messageString([]string{"a", "b"}))
	assert.Equal(t, `{"statusCode":0,"headers":null,"body":""}`, messageString(&response{}))
}
