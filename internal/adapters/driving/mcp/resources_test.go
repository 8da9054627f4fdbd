package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected []int
		ok       bool
	}{
		{
			name:     "valid solutions URI",
			uri:      "twentyfour://solutions/1,2,3,4",
			expected: []int{1, 2, 3, 4},
			ok:       true,
		},
		{
			name:     "spaces around numbers",
			uri:      "twentyfour://solutions/3, 3, 8, 8",
			expected: []int{3, 3, 8, 8},
			ok:       true,
		},
		{
			name: "invalid prefix",
			uri:  "file://solutions/1,2,3,4",
			ok:   false,
		},
		{
			name: "non-numeric segment",
			uri:  "twentyfour://solutions/1,two,3,4",
			ok:   false,
		},
		{
			name: "empty URI",
			uri:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := extractNumbers(tt.uri)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleRulesResource(t *testing.T) {
	ctx := context.Background()

	server, err := NewServer(validPorts())
	require.NoError(t, err)

	req := makeReadResourceRequest("twentyfour://rules")
	result, err := server.handleRulesResource(ctx, req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "twentyfour://rules", result.Contents[0].URI)
	assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, "exactly")
	assert.Contains(t, result.Contents[0].Text, "24")
}

func TestServer_handleDifficultiesResource(t *testing.T) {
	ctx := context.Background()

	server, err := NewServer(validPorts())
	require.NoError(t, err)

	req := makeReadResourceRequest("twentyfour://difficulties")
	result, err := server.handleDifficultiesResource(ctx, req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	text := result.Contents[0].Text
	for _, difficulty := range domain.AllDifficulties() {
		assert.Contains(t, text, string(difficulty))
		assert.Contains(t, text, difficulty.Description())
	}
	// Easy restricts the operator set to addition and subtraction.
	assert.Contains(t, text, `"operators": [
      "+",
      "-"
    ]`)
}

func TestServer_handleSolutionsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns solutions for a set", func(t *testing.T) {
		mockSolver := &mockSolverService{
			solutions: []domain.Solution{{Text: "(1 + 2 + 3) × 4"}},
		}
		ports := validPorts()
		ports.Solver = mockSolver
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("twentyfour://solutions/1,2,3,4")
		result, err := server.handleSolutionsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"count": 1`)
		assert.Contains(t, result.Contents[0].Text, "(1 + 2 + 3) × 4")
		assert.Equal(t, []int{1, 2, 3, 4}, mockSolver.lastPuzzle.Operands.Values())
	})

	t.Run("unparseable URI is not found", func(t *testing.T) {
		server, err := NewServer(validPorts())
		require.NoError(t, err)

		req := makeReadResourceRequest("twentyfour://solutions/one,two")
		_, err = server.handleSolutionsResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("out-of-range numbers are rejected", func(t *testing.T) {
		server, err := NewServer(validPorts())
		require.NoError(t, err)

		req := makeReadResourceRequest("twentyfour://solutions/0,2,3,4")
		_, err = server.handleSolutionsResource(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("returns error on solver failure", func(t *testing.T) {
		ports := validPorts()
		ports.Solver = &mockSolverService{err: errors.New("solve failed")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("twentyfour://solutions/1,2,3,4")
		_, err = server.handleSolutionsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "solve failed")
	})
}
