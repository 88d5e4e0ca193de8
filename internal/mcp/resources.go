// ABOUTME: MCP resource implementations for the lifedash store.
// ABOUTME: Provides lifedash://today and lifedash://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lifedash/internal/models"
)

func (s *Server) registerResources() {
	// lifedash://today - today's dashboard summary
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifedash://today",
		Name:        "Today",
		Description: "Today's habits, tasks, study hours, and health log",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// lifedash://summary - whole-store snapshot for the active identity
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifedash://summary",
		Name:        "Dashboard Summary",
		Description: "Every slice of the active identity's dashboard",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary := s.store.TodaySummary()

	today := models.Today()
	type habitRow struct {
		Name      string `json:"name"`
		Streak    int    `json:"streak"`
		DoneToday bool   `json:"done_today"`
	}
	var habits []habitRow
	for _, h := range s.store.Habits() {
		habits = append(habits, habitRow{Name: h.Name, Streak: h.Streak, DoneToday: h.CompletedOn(today)})
	}

	result := map[string]any{
		"summary":       summary,
		"habits":        habits,
		"pending_tasks": s.store.PendingTasks(),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "lifedash://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snapshot := s.store.Export()

	// Credentials stay out of resource payloads.
	snapshot.Settings.YouTubeAPIKey = ""
	snapshot.Settings.YouTubeChannelID = ""
	snapshot.Settings.OpenAIAPIKey = ""

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "lifedash://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
