// ABOUTME: MCP resource implementations for the workout log.
// ABOUTME: Provides lift://workouts/today and lift://workouts/recent.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/lift/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	todayURI  = "lift://workouts/today"
	recentURI = "lift://workouts/recent"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Workouts",
		Description: "Workouts logged today with exercises and sets",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Workouts",
		Description: "The 10 most recent workouts",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.Today()
	workouts, err := s.svc.WorkoutsByDate(s.as(ctx), today)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	sets := 0
	for _, w := range workouts {
		sets += w.SetCount()
	}

	return jsonResource(todayURI, map[string]any{
		"date":     today,
		"workouts": workouts,
		"counts": map[string]int{
			"workouts": len(workouts),
			"sets":     sets,
		},
	})
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.svc.RecentWorkouts(s.as(ctx), 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	return jsonResource(recentURI, map[string]any{"workouts": workouts})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
