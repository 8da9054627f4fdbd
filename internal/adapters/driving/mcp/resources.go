package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for twentyfour resources.
	uriScheme = "twentyfour://"
)

// rulesText describes the game for assistants that want to explain it.
const rulesText = `Combine the four dealt numbers into an arithmetic expression that
equals the target, classically 24. Each number must be used exactly
once; the operators are addition, subtraction, multiplication, and
division, with parentheses free. Arithmetic is exact: 8 / 3 only helps
when a later step cancels the remainder, as in 8 / (3 - 8 / 3) = 24.

Not every deal is solvable. Use the solve tool, or read
twentyfour://solutions/{numbers}, to list every distinct expression
for a set.`

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the game rules.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "rules",
		Name:        "rules",
		Description: "How the 24 game is played",
		MIMEType:    "text/plain",
	}, s.handleRulesResource)

	// Static resource for the difficulty levels.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "difficulties",
		Name:        "difficulties",
		Description: "Available difficulty levels and their operator policies",
		MIMEType:    "application/json",
	}, s.handleDifficultiesResource)

	// Template for the solutions of a specific number set.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "solutions/{numbers}",
		Name:        "solutions",
		Description: "Every solution for a comma-separated set of four numbers",
		MIMEType:    "application/json",
	}, s.handleSolutionsResource)
}

// handleRulesResource returns the rules of the game.
func (s *Server) handleRulesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     rulesText,
		}},
	}, nil
}

// handleDifficultiesResource returns the difficulty levels and their
// operator policies.
func (s *Server) handleDifficultiesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type difficultyInfo struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Operators   []string `json:"operators"`
	}

	difficulties := domain.AllDifficulties()
	infos := make([]difficultyInfo, len(difficulties))
	for i, difficulty := range difficulties {
		operators := difficulty.Operators()
		names := make([]string, len(operators))
		for j, op := range operators {
			names[j] = string(op)
		}
		infos[i] = difficultyInfo{
			Name:        string(difficulty),
			Description: difficulty.Description(),
			Operators:   names,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling difficulties: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSolutionsResource returns every solution for a number set.
func (s *Server) handleSolutionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	numbers, ok := extractNumbers(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	operands, err := domain.NewOperandSet(numbers)
	if err != nil {
		return nil, fmt.Errorf("parsing numbers: %w", err)
	}

	puzzle := domain.NewPuzzle(operands, domain.DifficultyNormal, domain.DefaultTarget)
	solutions, err := s.ports.Solver.Solve(ctx, puzzle)
	if err != nil {
		return nil, fmt.Errorf("solving %s: %w", operands, err)
	}

	type solutionsInfo struct {
		Numbers   []int    `json:"numbers"`
		Target    int      `json:"target"`
		Count     int      `json:"count"`
		Solutions []string `json:"solutions"`
	}

	info := solutionsInfo{
		Numbers:   operands.Values(),
		Target:    puzzle.Target,
		Count:     len(solutions),
		Solutions: make([]string, len(solutions)),
	}
	for i := range solutions {
		info.Solutions[i] = solutions[i].Text
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling solutions: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractNumbers parses a URI like twentyfour://solutions/1,2,3,4 into
// its number list.
func extractNumbers(uri string) ([]int, bool) {
	const prefix = uriScheme + "solutions/"

	if !strings.HasPrefix(uri, prefix) {
		return nil, false
	}

	parts := strings.Split(strings.TrimPrefix(uri, prefix), ",")
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		numbers = append(numbers, n)
	}
	return numbers, true
}
