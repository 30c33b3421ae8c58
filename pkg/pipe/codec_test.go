package pipe

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type profile struct {
	Name Option[string]   `json:"name" yaml:"name"`
	Age  Option[int]      `json:"age" yaml:"age"`
	Tags Option[[]string] `json:"tags" yaml:"tags"`
}

func TestOption_JSONDecode(t *testing.T) {
	t.Parallel()

	var p profile
	require.NoError(t, json.Unmarshal([]byte(`{"name":"bob","age":null}`), &p))

	assert.Equal(t, Some("bob"), p.Name)
	assert.True(t, p.Age.IsAbsent())
	assert.True(t, p.Tags.IsAbsent())
}

func TestOption_JSONPresentZero(t *testing.T) {
	t.Parallel()

	var p profile
	require.NoError(t, json.Unmarshal([]byte(`{"age":0,"tags":[]}`), &p))

	assert.Equal(t, Some(0), p.Age)
	tags, ok := p.Tags.Get()
	assert.True(t, ok)
	assert.Empty(t, tags)
}

func TestOption_JSONEncode(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(profile{Name: Some("ann")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ann","age":null,"tags":null}`, string(out))
}

func TestOption_JSONDecodeError(t *testing.T) {
	t.Parallel()

	var p profile
	assert.Error(t, json.Unmarshal([]byte(`{"age":"old"}`), &p))
}

func TestOption_YAMLDecode(t *testing.T) {
	t.Parallel()

	var p profile
	require.NoError(t, yaml.Unmarshal([]byte("name: bob\nage: ~\ntags: [a, b]\n"), &p))

	assert.Equal(t, Some("bob"), p.Name)
	assert.True(t, p.Age.IsAbsent())
	assert.Equal(t, Some([]string{"a", "b"}), p.Tags)
}

func TestOption_YAMLEncode(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(profile{Name: Some("ann"), Age: Some(0)})
	require.NoError(t, err)

	var back profile
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, Some("ann"), back.Name)
	assert.Equal(t, Some(0), back.Age)
	assert.True(t, back.Tags.IsAbsent())
}

func TestOption_JSONNullResetsPresent(t *testing.T) {
	t.Parallel()

	p := profile{Name: Some("old")}
	require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &p))
	assert.True(t, p.Name.IsAbsent())
}

func TestOption_YAMLNullLeavesPresentUntouched(t *testing.T) {
	t.Parallel()

	p := profile{Name: Some("old")}
	require.NoError(t, yaml.Unmarshal([]byte("name: ~\n"), &p))
	assert.Equal(t, Some("old"), p.Name)

	o := Some(5)
	require.NoError(t, yaml.Unmarshal([]byte("~"), &o))
	assert.Equal(t, Some(5), o)
}
