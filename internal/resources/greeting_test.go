package resources

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/config"
)

func lookupFrom(env map[string]string) EnvLookup {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func readRequest(uri string) mcp.ReadResourceRequest {
	request := mcp.ReadResourceRequest{}
	request.Params.URI = uri
	return request
}

func TestGreetingResourceDefinition(t *testing.T) {
	resource := NewGreetingResource(lookupFrom(nil)).GetResource()

	assert.Equal(t, "simple://greeting", resource.URI)
	assert.Equal(t, "Greeting", resource.Name)
	assert.Equal(t, "text/plain", resource.MIMEType)
	assert.NotEmpty(t, resource.Description)
}

func TestGreetingResourceHandle(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		uri          string
		expectedText string
		expectedErr  error
	}{
		{
			name:         "interpolates the environment value",
			env:          map[string]string{"SAMPLE_ENV": "hello"},
			uri:          "simple://greeting",
			expectedText: "Hello, hello!",
		},
		{
			name:         "empty value still greets",
			env:          map[string]string{"SAMPLE_ENV": ""},
			uri:          "simple://greeting",
			expectedText: "Hello, !",
		},
		{
			name:        "missing variable is a configuration error",
			env:         map[string]string{},
			uri:         "simple://greeting",
			expectedErr: config.ErrMissingEnv,
		},
		{
			name:        "unknown uri is not found",
			env:         map[string]string{"SAMPLE_ENV": "hello"},
			uri:         "simple://nope",
			expectedErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resource := NewGreetingResource(lookupFrom(tt.env))
			contents, err := resource.Handle(context.Background(), readRequest(tt.uri))

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, contents)
				return
			}

			require.NoError(t, err)
			require.Len(t, contents, 1)
			text, ok := contents[0].(mcp.TextResourceContents)
			require.True(t, ok)
			assert.Equal(t, "simple://greeting", text.URI)
			assert.Equal(t, "text/plain", text.MIMEType)
			assert.Equal(t, tt.expectedText, text.Text)
		})
	}
}

func TestGreetingResourceNotFoundNamesURI(t *testing.T) {
	resource := NewGreetingResource(lookupFrom(map[string]string{"SAMPLE_ENV": "hello"}))
	_, err := resource.Handle(context.Background(), readRequest("simple://nope"))

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "simple://nope")
}

func TestGreetingResourceReadsEnvironmentPerCall(t *testing.T) {
	env := map[string]string{"SAMPLE_ENV": "first"}
	resource := NewGreetingResource(lookupFrom(env))

	contents, err := resource.Handle(context.Background(), readRequest(GreetingURI))
	require.NoError(t, err)
	assert.Equal(t, "Hello, first!", contents[0].(mcp.TextResourceContents).Text)

	env["SAMPLE_ENV"] = "second"
	contents, err = resource.Handle(context.Background(), readRequest(GreetingURI))
	require.NoError(t, err)
	assert.Equal(t, "Hello, second!", contents[0].(mcp.TextResourceContents).Text)
}
