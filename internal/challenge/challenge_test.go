package challenge_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novafacing/mkchal/internal/challenge"
)

func validParams() challenge.Params {
	return challenge.Params{
		Type:        challenge.TypePwn,
		Name:        "stack1",
		Author:      "alice",
		Description: []string{"simple", "overflow"},
		Difficulty:  challenge.DifficultyEasy,
		Flag:        "flag{test}",
		Provides:    []string{"dist/stack1"},
		Ports:       []int{1337},
	}
}

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		c, err := challenge.New(validParams())
		require.NoError(t, err)

		assert.Equal(t, "simple overflow", c.Description)
		assert.Nil(t, c.Remote)
		assert.Nil(t, c.Target)
		assert.False(t, c.HasRemote())
		assert.Equal(t, 1337, c.DeployPort())
	})

	t.Run("Copies Slices", func(t *testing.T) {
		p := validParams()
		p.Remote = []string{"docker", "compose", "up"}
		c, err := challenge.New(p)
		require.NoError(t, err)

		p.Provides[0] = "changed"
		p.Ports[0] = 1
		p.Remote[0] = "podman"
		assert.Equal(t, []string{"dist/stack1"}, c.Provides)
		assert.Equal(t, []int{1337}, c.Ports)
		assert.Equal(t, []string{"docker", "compose", "up"}, c.Remote)
	})

	t.Run("Target", func(t *testing.T) {
		p := validParams()
		p.Target = "/tmp/out"
		c, err := challenge.New(p)
		require.NoError(t, err)
		require.NotNil(t, c.Target)
		assert.Equal(t, "/tmp/out", *c.Target)
	})

	t.Run("Empty Remote", func(t *testing.T) {
		p := validParams()
		p.Remote = []string{}
		_, err := challenge.New(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "remote")
	})

	invalid := []struct {
		name   string
		mutate func(p *challenge.Params)
		want   string
	}{
		{"Missing Name", func(p *challenge.Params) { p.Name = "" }, "name: is required"},
		{"Missing Author", func(p *challenge.Params) { p.Author = "" }, "author: is required"},
		{"Missing Description", func(p *challenge.Params) { p.Description = nil }, "description: is required"},
		{"Missing Flag", func(p *challenge.Params) { p.Flag = "" }, "flag: is required"},
		{"Missing Provides", func(p *challenge.Params) { p.Provides = nil }, "provides"},
		{"Missing Ports", func(p *challenge.Params) { p.Ports = nil }, "ports"},
		{"Port Out Of Range", func(p *challenge.Params) { p.Ports = []int{70000} }, "ports[0]"},
		{"Bad Type", func(p *challenge.Params) { p.Type = "forensics" }, "type"},
		{"Bad Difficulty", func(p *challenge.Params) { p.Difficulty = "easy" }, "difficulty"},
		{"Name With Separator", func(p *challenge.Params) { p.Name = "a/b" }, "single directory name"},
		{"Name Dot Dot", func(p *challenge.Params) { p.Name = ".." }, "single directory name"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := challenge.New(p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseEnums(t *testing.T) {
	for _, s := range []string{"rev", "pwn", "crypto", "web", "misc"} {
		typ, err := challenge.ParseType(s)
		require.NoError(t, err)
		assert.Equal(t, s, typ.String())
	}
	_, err := challenge.ParseType("Pwn")
	require.Error(t, err)

	for _, s := range []string{"Easy", "Medium", "Hard"} {
		d, err := challenge.ParseDifficulty(s)
		require.NoError(t, err)
		assert.Equal(t, s, d.String())
	}
	_, err = challenge.ParseDifficulty("Insane")
	require.Error(t, err)

	dt, err := challenge.ParseDeployType("docker-compose")
	require.NoError(t, err)
	assert.Equal(t, challenge.DeployDockerCompose, dt)
	_, err = challenge.ParseDeployType("k8s")
	require.Error(t, err)
}

func TestFlagValue(t *testing.T) {
	var typ challenge.Type
	require.NoError(t, typ.Set("crypto"))
	assert.Equal(t, challenge.TypeCrypto, typ)
	assert.Error(t, typ.Set("stego"))
	assert.Equal(t, challenge.TypeCrypto, typ, "failed Set must not change the value")

	var d challenge.Difficulty
	require.NoError(t, d.Set("Hard"))
	assert.Equal(t, challenge.DifficultyHard, d)
	assert.Error(t, d.Set("hard"))
}

func TestEncode(t *testing.T) {
	c, err := challenge.New(validParams())
	require.NoError(t, err)

	data, err := c.Encode()
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "\n    \"description\": \"simple overflow\",")
	assert.Contains(t, text, "\"remote\": null")
	assert.Contains(t, text, "\"target\": null")
	assert.False(t, strings.HasSuffix(text, "\n"), "no trailing newline")

	keys := []string{"author", "description", "difficulty", "flag", "name", "ports", "provides", "remote", "target", "type"}
	last := -1
	for _, k := range keys {
		idx := strings.Index(text, "\""+k+"\":")
		require.NotEqual(t, -1, idx, "missing key %s", k)
		assert.Greater(t, idx, last, "key %s out of order", k)
		last = idx
	}
}

func TestEncodeNoHTMLEscape(t *testing.T) {
	p := validParams()
	p.Flag = "flag{<&>}"
	c, err := challenge.New(p)
	require.NoError(t, err)

	data, err := c.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"flag": "flag{<&>}"`)
}

func TestRoundTrip(t *testing.T) {
	t.Run("Without Optionals", func(t *testing.T) {
		c, err := challenge.New(validParams())
		require.NoError(t, err)

		data, err := c.Encode()
		require.NoError(t, err)
		back, err := challenge.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, c, back)
	})

	t.Run("With Optionals", func(t *testing.T) {
		p := validParams()
		p.Remote = []string{"docker-compose", "up", "-d"}
		p.Target = "/srv/chals"
		p.Ports = []int{1337, 8080}
		p.Provides = []string{"dist/a", "dist/b.tar.gz"}
		c, err := challenge.New(p)
		require.NoError(t, err)

		data, err := c.Encode()
		require.NoError(t, err)
		back, err := challenge.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, c, back)
	})

	t.Run("Generic Decode", func(t *testing.T) {
		c, err := challenge.New(validParams())
		require.NoError(t, err)
		data, err := c.Encode()
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Len(t, raw, 10)
		assert.Equal(t, "pwn", raw["type"])
		assert.Equal(t, "Easy", raw["difficulty"])
		assert.Equal(t, []any{float64(1337)}, raw["ports"])
	})
}

func TestDecodeRejectsInvalid(t *testing.T) {
	_, err := challenge.Decode([]byte(`{"type": "forensics"}`))
	require.Error(t, err)

	_, err = challenge.Decode([]byte(`{"type": "pwn", "name": "x"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "author: is required")
}
