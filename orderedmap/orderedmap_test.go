package orderedmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestMapSetGet(t *testing.T) {
	m := New[int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("m", 3)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"b", "a", "m"}, m.Keys())
	assert.Equal(t, []int{1, 2, 3}, m.Values())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	assert.True(t, m.Has("b"))
	assert.False(t, m.Has("z"))

	_, ok = m.Get("z")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Value("z"))
}

func TestMapSetExistingKeepsPosition(t *testing.T) {
	m := New[string]()
	m.Set("first", "1")
	m.Set("second", "2")
	m.Set("third", "3")

	m.Set("first", "updated")

	assert.Equal(t, []string{"first", "second", "third"}, m.Keys())
	assert.Equal(t, "updated", m.Value("first"))
}

func TestMapDelete(t *testing.T) {
	m := New[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.True(t, m.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))

	assert.False(t, m.Delete("b"))
	assert.Equal(t, 2, m.Len())
}

func TestMapNilSafety(t *testing.T) {
	var m *Map[int]

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	assert.Nil(t, m.Keys())
	assert.Nil(t, m.Values())
	assert.False(t, m.Delete("a"))

	v, ok := m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, v)

	count := 0
	for range m.All() {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestMapZeroValue(t *testing.T) {
	var m Map[int]
	m.Set("a", 1)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.Value("a"))
}

func TestMapAll(t *testing.T) {
	m := New[int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("m", 3)

	var keys []string
	var values []int
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []string{"b", "a", "m"}, keys)
	assert.Equal(t, []int{1, 2, 3}, values)

	// Early break must not panic
	for k := range m.All() {
		if k == "a" {
			break
		}
	}
}

func TestMapKeysReturnsCopy(t *testing.T) {
	m := New[int]()
	m.Set("a", 1)
	m.Set("b", 2)

	keys := m.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestMapJSONRoundTrip(t *testing.T) {
	input := `{"b":1,"a":2,"m":3}`

	m := New[int]()
	require.NoError(t, json.Unmarshal([]byte(input), m))
	assert.Equal(t, []string{"b", "a", "m"}, m.Keys())

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, input, string(data))
}

func TestMapJSONNestedValues(t *testing.T) {
	input := `{"outer":{"inner":"value"},"list":[1,2,3]}`

	m := New[any]()
	require.NoError(t, json.Unmarshal([]byte(input), m))
	assert.Equal(t, []string{"outer", "list"}, m.Keys())

	outer, ok := m.Value("outer").(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "value", outer["inner"])
}

func TestMapJSONNull(t *testing.T) {
	m := New[int]()
	m.Set("kept", 1)

	require.NoError(t, json.Unmarshal([]byte(`null`), m))
	assert.Equal(t, []string{"kept"}, m.Keys())
}

func TestMapJSONEmpty(t *testing.T) {
	m := New[int]()
	require.NoError(t, json.Unmarshal([]byte(`{}`), m))
	assert.Equal(t, 0, m.Len())

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestMapJSONRejectsNonObject(t *testing.T) {
	m := New[int]()
	err := json.Unmarshal([]byte(`[1,2,3]`), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected object")
}

func TestMapJSONEscapedKeys(t *testing.T) {
	m := New[int]()
	m.Set(`quote"key`, 1)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"quote\"key":1}`, string(data))

	parsed := New[int]()
	require.NoError(t, json.Unmarshal(data, parsed))
	assert.Equal(t, 1, parsed.Value(`quote"key`))
}

func TestMapYAMLRoundTrip(t *testing.T) {
	input := "b: 1\na: 2\nm: 3\n"

	m := New[int]()
	require.NoError(t, yaml.Unmarshal([]byte(input), m))
	assert.Equal(t, []string{"b", "a", "m"}, m.Keys())
	assert.Equal(t, 2, m.Value("a"))

	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, input, string(data))
}

func TestMapYAMLNestedValues(t *testing.T) {
	input := "outer:\n  inner: value\nlist:\n  - 1\n  - 2\n"

	m := New[any]()
	require.NoError(t, yaml.Unmarshal([]byte(input), m))
	assert.Equal(t, []string{"outer", "list"}, m.Keys())
}

func TestMapYAMLRejectsSequence(t *testing.T) {
	m := New[int]()
	err := yaml.Unmarshal([]byte("- 1\n- 2\n"), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-mapping")
}

func TestMapYAMLStructValues(t *testing.T) {
	type item struct {
		Name string `yaml:"name"`
	}
	input := "second:\n  name: two\nfirst:\n  name: one\n"

	m := New[*item]()
	require.NoError(t, yaml.Unmarshal([]byte(input), m))
	assert.Equal(t, []string{"second", "first"}, m.Keys())
	require.NotNil(t, m.Value("first"))
	assert.Equal(t, "one", m.Value("first").Name)
}
