package mcp

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/2beens/trainingtracker/internal/training/analytics"
	"github.com/2beens/trainingtracker/internal/training/calendar"
	"github.com/2beens/trainingtracker/internal/training/onerm"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns MCP tool calls into service calls and formats the results.
type Handler struct {
	service contextService
	now     func() time.Time
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func (h *Handler) GetTrainingSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

type AnalyticsInput struct {
	ProfileID int    `json:"profile_id" jsonschema:"Profile id"`
	Period    string `json:"period,omitempty" jsonschema:"One of week, month, year, all (default all)"`
}

func (h *Handler) GetAnalyticsTool() func(context.Context, *mcp.CallToolRequest, AnalyticsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AnalyticsInput) (*mcp.CallToolResult, any, error) {
		period, err := analytics.ParsePeriod(in.Period)
		if err != nil {
			return errorResult("Invalid period: use week, month, year or all"), nil, nil
		}
		result, err := h.service.GetAnalytics(ctx, in.ProfileID, period)
		if err != nil {
			return errorResult("Error computing analytics: " + err.Error()), nil, nil
		}
		if result == nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Not enough data: no recorded sets in the period."}},
			}, nil, nil
		}
		return jsonResult(result), nil, nil
	}
}

type EstimateOneRMInput struct {
	Weight     float64 `json:"weight" jsonschema:"Lifted weight in kg"`
	Reps       int     `json:"reps" jsonschema:"Repetitions performed with that weight"`
	Percentage int     `json:"percentage,omitempty" jsonschema:"Training intensity as percent of 1RM, 50..100 (default 100)"`
	Formula    string  `json:"formula,omitempty" jsonschema:"One of brzycki, epley, lander (default brzycki)"`
	Sets       int     `json:"sets,omitempty" jsonschema:"Number of sets to generate, 1..6 (default 6)"`
}

func (h *Handler) EstimateOneRMTool() func(context.Context, *mcp.CallToolRequest, EstimateOneRMInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in EstimateOneRMInput) (*mcp.CallToolResult, any, error) {
		if in.Percentage == 0 {
			in.Percentage = onerm.MaxPercentage
		}
		if in.Sets == 0 {
			in.Sets = onerm.DefaultSetsCount
		}
		formula, err := onerm.ParseFormula(in.Formula)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		plan, err := onerm.Calculate(in.Weight, in.Reps, in.Percentage, formula, in.Sets)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		plan.TargetWeight = math.Round(plan.TargetWeight)
		return jsonResult(plan), nil, nil
	}
}

type PlanForDateInput struct {
	ProgramID int    `json:"program_id" jsonschema:"Training program id"`
	Date      string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

func (h *Handler) GetPlanForDateTool() func(context.Context, *mcp.CallToolRequest, PlanForDateInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PlanForDateInput) (*mcp.CallToolResult, any, error) {
		date := calendar.Date(h.now())
		if in.Date != "" {
			parsed, err := time.Parse(calendar.DateLayout, in.Date)
			if err != nil {
				return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
			}
			date = parsed
		}
		plan, err := h.service.GetPlanForDate(ctx, in.ProgramID, date)
		if err != nil {
			return errorResult("Error resolving plan: " + err.Error()), nil, nil
		}
		return jsonResult(plan), nil, nil
	}
}
