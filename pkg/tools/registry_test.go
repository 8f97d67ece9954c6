package tools_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footfallz/validation-server/pkg/tools"
)

func echoTool(name string) tools.Tool {
	return tools.Tool{
		Name: name,
		Handler: func(_ context.Context, args json.RawMessage) (any, error) {
			return string(args), nil
		},
	}
}

func TestRegistryRegister(t *testing.T) {
	t.Run("registers and dispatches", func(t *testing.T) {
		r := tools.NewRegistry()
		require.NoError(t, r.Register(echoTool("echo")))

		out, err := r.Call(context.Background(), "echo", json.RawMessage(`{"a":1}`))
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, out)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		r := tools.NewRegistry()
		err := r.Register(echoTool(""))
		assert.ErrorIs(t, err, tools.ErrEmptyToolName)
	})

	t.Run("rejects nil handler", func(t *testing.T) {
		r := tools.NewRegistry()
		err := r.Register(tools.Tool{Name: "broken"})
		assert.ErrorIs(t, err, tools.ErrNilHandler)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		r := tools.NewRegistry()
		require.NoError(t, r.Register(echoTool("echo")))

		err := r.Register(echoTool("echo"))
		assert.ErrorIs(t, err, tools.ErrDuplicateTool)
	})
}

func TestRegistryCall(t *testing.T) {
	t.Run("unknown tool", func(t *testing.T) {
		r := tools.NewRegistry()
		_, err := r.Call(context.Background(), "missing", nil)
		assert.ErrorIs(t, err, tools.ErrUnknownTool)
		assert.Contains(t, err.Error(), "missing")
	})
}

func TestRegistryListing(t *testing.T) {
	r := tools.NewRegistry()
	require.NoError(t, r.Register(echoTool("first")))
	require.NoError(t, r.Register(echoTool("second")))
	require.NoError(t, r.Register(echoTool("third")))

	assert.Equal(t, []string{"first", "second", "third"}, r.Names())

	list := r.Tools()
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Name)
	assert.Equal(t, "third", list[2].Name)

	got, ok := r.Get("second")
	require.True(t, ok)
	assert.Equal(t, "second", got.Name)

	_, ok = r.Get("fourth")
	assert.False(t, ok)
}
