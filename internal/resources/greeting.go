// Package resources defines the MCP resources served by this server.
package resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/katsuhirohonda/mcp-backlog-server-cursor/internal/config"
)

// ErrNotFound reports a read of a resource URI this server does not serve.
var ErrNotFound = errors.New("resource not found")

// GreetingURI is the URI of the static greeting resource.
const GreetingURI = "simple://greeting"

// sampleEnvVar names the environment variable interpolated into the greeting.
const sampleEnvVar = "SAMPLE_ENV"

// EnvLookup reports the value of an environment variable, mirroring
// os.LookupEnv.
type EnvLookup func(key string) (string, bool)

// GreetingResource serves a plain-text greeting that interpolates
// SAMPLE_ENV at read time.
type GreetingResource struct {
	lookupEnv EnvLookup
}

// NewGreetingResource creates the greeting resource backed by lookupEnv.
func NewGreetingResource(lookupEnv EnvLookup) *GreetingResource {
	return &GreetingResource{
		lookupEnv: lookupEnv,
	}
}

// GetResource returns the MCP resource definition.
func (r *GreetingResource) GetResource() mcp.Resource {
	return mcp.NewResource(
		GreetingURI,
		"Greeting",
		mcp.WithResourceDescription("A simple greeting message"),
		mcp.WithMIMEType("text/plain"),
	)
}

// Handle serves a resources/read request. The environment is consulted on
// every read, so the greeting always reflects the current SAMPLE_ENV.
func (r *GreetingResource) Handle(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if request.Params.URI != GreetingURI {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, request.Params.URI)
	}

	value, ok := r.lookupEnv(sampleEnvVar)
	if !ok {
		return nil, fmt.Errorf("%w: %s", config.ErrMissingEnv, sampleEnvVar)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      GreetingURI,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Hello, %s!", value),
		},
	}, nil
}
