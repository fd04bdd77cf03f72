package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatClientRejectsUnknownProvider(t *testing.T) {
	client, err := NewChatClient("anthropic", "key", "model")

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "unsupported chat provider")
}

func TestNewChatClientSelectsOpenAI(t *testing.T) {
	client, err := NewChatClient("OpenAI", "key", "gpt-4o")

	require.NoError(t, err)
	assert.IsType(t, &OpenAIChatClient{}, client)
}
