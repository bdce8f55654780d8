package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	b := &Bot{
		router: NewRouter(DefaultPrefix),
		cfg:    Config{Prefix: DefaultPrefix},
	}
	b.register()
	return b
}

func TestRouterMatch(t *testing.T) {
	b := newTestBot(t)

	t.Run("known command", func(t *testing.T) {
		h, args, ok := b.router.Match("lunaria!wisdom")
		require.True(t, ok)
		require.NotNil(t, h)
		assert.Empty(t, args)
	})

	t.Run("args after name", func(t *testing.T) {
		_, args, ok := b.router.Match("lunaria!welcome @someone else")
		require.True(t, ok)
		assert.Equal(t, []string{"@someone", "else"}, args)
	})

	t.Run("exact name only", func(t *testing.T) {
		_, _, ok := b.router.Match("lunaria!wisdomX")
		assert.False(t, ok, "wisdomX must not dispatch wisdom")
	})

	t.Run("prefix required", func(t *testing.T) {
		_, _, ok := b.router.Match("wisdom")
		assert.False(t, ok)
	})

	t.Run("name must abut prefix", func(t *testing.T) {
		_, _, ok := b.router.Match("lunaria! wisdom")
		assert.False(t, ok, "space after prefix must not dispatch")
	})

	t.Run("bare prefix", func(t *testing.T) {
		_, _, ok := b.router.Match("lunaria!")
		assert.False(t, ok)
	})

	t.Run("unknown command", func(t *testing.T) {
		_, _, ok := b.router.Match("lunaria!summon")
		assert.False(t, ok)
	})
}

func TestNewRequiresToken(t *testing.T) {
	b, err := New(Config{}, nil)
	require.Error(t, err)
	assert.Nil(t, b)
}

func TestRouterCustomPrefix(t *testing.T) {
	r := NewRouter("nyx?")
	r.Handle("ping", func(_ *Invocation) (*Response, error) {
		return &Response{Content: "pong"}, nil
	})

	h, _, ok := r.Match("nyx?ping")
	require.True(t, ok)

	resp, err := h(&Invocation{})
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.Content)

	_, _, ok = r.Match("lunaria!ping")
	assert.False(t, ok)
}
