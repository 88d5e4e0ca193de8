// ABOUTME: MCP tool implementations over the lifedash store.
// ABOUTME: Covers habits, tasks, transactions, health, study, reflections.
package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lifedash/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_habit",
		Description: "Create a new habit to track daily",
	}, s.handleAddHabit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_habit",
		Description: "Toggle a habit's completion for a date (default today)",
	}, s.handleToggleHabit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_habits",
		Description: "List all habits with streaks and today's completion",
	}, s.handleListHabits)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_task",
		Description: "Add a to-do task",
	}, s.handleAddTask)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_task",
		Description: "Toggle a task's completed state by ID or ID prefix",
	}, s.handleCompleteTask)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_transaction",
		Description: "Record an income or expense transaction",
	}, s.handleAddTransaction)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_health",
		Description: "Upsert today's health log (sleep, hydration, mood, ...)",
	}, s.handleLogHealth)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_study",
		Description: "Add study hours to a date (default today)",
	}, s.handleLogStudy)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_reflection",
		Description: "Append a reflection journal entry",
	}, s.handleAddReflection)
}

// Tool input/output types

type addHabitInput struct {
	Name     string `json:"name" jsonschema:"description=Habit name,required"`
	Category string `json:"category,omitempty" jsonschema:"description=Habit category (Mind, Body, Work, ...)"`
	Priority string `json:"priority,omitempty" jsonschema:"description=low, medium, or high"`
}

type habitOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Streak  int    `json:"streak"`
	Message string `json:"message"`
}

type toggleHabitInput struct {
	ID   string `json:"id" jsonschema:"description=Habit ID or prefix,required"`
	Date string `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
}

type addTaskInput struct {
	Name     string `json:"name" jsonschema:"description=Task name,required"`
	Date     string `json:"date,omitempty" jsonschema:"description=Scheduled date (YYYY-MM-DD), defaults to today"`
	Priority string `json:"priority,omitempty" jsonschema:"description=low, medium, or high"`
	Category string `json:"category,omitempty" jsonschema:"description=Task category"`
}

type completeTaskInput struct {
	ID string `json:"id" jsonschema:"description=Task ID or prefix,required"`
}

type addTransactionInput struct {
	Name     string  `json:"name" jsonschema:"description=Transaction name,required"`
	Amount   float64 `json:"amount" jsonschema:"description=Unsigned amount,required"`
	Type     string  `json:"type" jsonschema:"description=income or expense,required"`
	Category string  `json:"category,omitempty" jsonschema:"description=Spending category"`
}

type logHealthInput struct {
	Date          string   `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
	SleepHours    *float64 `json:"sleep_hours,omitempty" jsonschema:"description=Hours slept"`
	HydrationCups *int     `json:"hydration_cups,omitempty" jsonschema:"description=Cups of water"`
	Mood          *string  `json:"mood,omitempty" jsonschema:"description=Mood word"`
	Weight        *float64 `json:"weight,omitempty" jsonschema:"description=Body weight"`
}

type logStudyInput struct {
	Hours float64 `json:"hours" jsonschema:"description=Hours to add,required"`
	Date  string  `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
}

type addReflectionInput struct {
	Thought string   `json:"thought" jsonschema:"description=Reflection text,required"`
	Tags    []string `json:"tags,omitempty" jsonschema:"description=Free-form tags"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddHabit(ctx context.Context, req *mcp.CallToolRequest, input addHabitInput) (*mcp.CallToolResult, habitOutput, error) {
	if input.Name == "" {
		return nil, habitOutput{}, fmt.Errorf("habit name is required")
	}

	h := models.NewHabit(input.Name, input.Category)
	if input.Priority != "" {
		h.WithPriority(models.Priority(input.Priority))
	}
	s.store.AddHabit(h)

	return nil, habitOutput{
		ID:      h.ID.String()[:8],
		Name:    h.Name,
		Streak:  h.Streak,
		Message: fmt.Sprintf("Added habit %q (ID: %s)", h.Name, h.ID.String()[:8]),
	}, nil
}

func (s *Server) handleToggleHabit(ctx context.Context, req *mcp.CallToolRequest, input toggleHabitInput) (*mcp.CallToolResult, habitOutput, error) {
	h, err := s.findHabit(input.ID)
	if err != nil {
		return nil, habitOutput{}, err
	}

	date := input.Date
	if date == "" {
		date = models.Today()
	} else if !models.ValidDateKey(date) {
		return nil, habitOutput{}, fmt.Errorf("invalid date: %s", input.Date)
	}

	s.store.ToggleHabitDate(h.ID, date)

	updated, err := s.findHabit(h.ID.String())
	if err != nil {
		return nil, habitOutput{}, err
	}
	state := "completed"
	if !updated.CompletedOn(date) {
		state = "un-completed"
	}
	return nil, habitOutput{
		ID:      updated.ID.String()[:8],
		Name:    updated.Name,
		Streak:  updated.Streak,
		Message: fmt.Sprintf("%s %q for %s (streak: %d)", state, updated.Name, date, updated.Streak),
	}, nil
}

func (s *Server) handleListHabits(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	habits := s.store.Habits()
	if len(habits) == 0 {
		return nil, map[string]any{"message": "No habits yet."}, nil
	}

	today := models.Today()
	type habitRow struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Category  string `json:"category"`
		Streak    int    `json:"streak"`
		DoneToday bool   `json:"done_today"`
	}
	rows := make([]habitRow, 0, len(habits))
	for _, h := range habits {
		rows = append(rows, habitRow{
			ID:        h.ID.String()[:8],
			Name:      h.Name,
			Category:  h.Category,
			Streak:    h.Streak,
			DoneToday: h.CompletedOn(today),
		})
	}
	return nil, rows, nil
}

func (s *Server) handleAddTask(ctx context.Context, req *mcp.CallToolRequest, input addTaskInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Name == "" {
		return nil, simpleOutput{}, fmt.Errorf("task name is required")
	}

	date := input.Date
	if date == "" {
		date = models.Today()
	}
	t := models.NewTask(input.Name, date)
	if input.Priority != "" {
		t.WithPriority(models.Priority(input.Priority))
	}
	if input.Category != "" {
		t.WithCategory(input.Category)
	}
	s.store.AddTask(t)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added task %q for %s (ID: %s)", t.Name, t.Time, t.ID.String()[:8]),
	}, nil
}

func (s *Server) handleCompleteTask(ctx context.Context, req *mcp.CallToolRequest, input completeTaskInput) (*mcp.CallToolResult, simpleOutput, error) {
	t, err := s.findTask(input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.ToggleTask(t.ID)

	state := "completed"
	if t.Completed {
		state = "reopened"
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("%s task %q", state, t.Name),
	}, nil
}

func (s *Server) handleAddTransaction(ctx context.Context, req *mcp.CallToolRequest, input addTransactionInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Name == "" {
		return nil, simpleOutput{}, fmt.Errorf("transaction name is required")
	}
	if !models.IsValidTxType(input.Type) {
		return nil, simpleOutput{}, fmt.Errorf("type must be income or expense, got %q", input.Type)
	}

	tx := models.NewTransaction(input.Name, input.Amount, models.TxType(input.Type))
	tx.Category = input.Category
	s.store.AddTransaction(tx)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %s %q: %.2f", tx.Type, tx.Name, tx.Amount),
	}, nil
}

func (s *Server) handleLogHealth(ctx context.Context, req *mcp.CallToolRequest, input logHealthInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := input.Date
	if date == "" {
		date = models.Today()
	} else if !models.ValidDateKey(date) {
		return nil, simpleOutput{}, fmt.Errorf("invalid date: %s", input.Date)
	}

	s.store.UpsertHealthLog(date, models.HealthPatch{
		SleepHours:    input.SleepHours,
		HydrationCups: input.HydrationCups,
		Mood:          input.Mood,
		Weight:        input.Weight,
	})

	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated health log for %s", date),
	}, nil
}

func (s *Server) handleLogStudy(ctx context.Context, req *mcp.CallToolRequest, input logStudyInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Hours <= 0 {
		return nil, simpleOutput{}, fmt.Errorf("hours must be positive")
	}

	date := input.Date
	if date == "" {
		date = models.Today()
	} else if !models.ValidDateKey(date) {
		return nil, simpleOutput{}, fmt.Errorf("invalid date: %s", input.Date)
	}

	s.store.LogStudyHours(date, input.Hours)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %.1f study hours for %s (total: %.1f)", input.Hours, date, s.store.StudyHoursFor(date)),
	}, nil
}

func (s *Server) handleAddReflection(ctx context.Context, req *mcp.CallToolRequest, input addReflectionInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Thought == "" {
		return nil, simpleOutput{}, fmt.Errorf("reflection text is required")
	}

	r := models.NewReflection(input.Thought, input.Tags)
	s.store.AddReflection(r)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved reflection (ID: %s)", r.ID.String()[:8]),
	}, nil
}

// findHabit resolves a habit by full ID or unique 8-char-style prefix.
func (s *Server) findHabit(idOrPrefix string) (*models.Habit, error) {
	var match *models.Habit
	for _, h := range s.store.Habits() {
		if matchesID(h.ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous prefix %s: matches multiple habits", idOrPrefix)
			}
			hh := h
			match = &hh
		}
	}
	if match == nil {
		return nil, fmt.Errorf("habit not found: %s", idOrPrefix)
	}
	return match, nil
}

// findTask resolves a task by full ID or unique prefix.
func (s *Server) findTask(idOrPrefix string) (*models.Task, error) {
	var match *models.Task
	for _, t := range s.store.Tasks() {
		if matchesID(t.ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous prefix %s: matches multiple tasks", idOrPrefix)
			}
			tt := t
			match = &tt
		}
	}
	if match == nil {
		return nil, fmt.Errorf("task not found: %s", idOrPrefix)
	}
	return match, nil
}

func matchesID(id uuid.UUID, idOrPrefix string) bool {
	str := id.String()
	return str == idOrPrefix || (len(idOrPrefix) >= 4 && len(idOrPrefix) < len(str) && str[:len(idOrPrefix)] == idOrPrefix)
}
