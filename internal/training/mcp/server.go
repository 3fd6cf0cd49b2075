package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing training tools: schema, analytics,
// 1RM estimation and the plan of a program day.
func NewServer(service *ContextService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "training-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_schema",
		Description: "Returns the DB schema of the training tables (profiles, exercise logs and set entries, programs, sessions, goals, records, body weight): columns, types, nullable, default.",
	}, h.GetTrainingSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_analytics",
		Description: "Returns analytics for a profile: total workouts, volume, average intensity, BMI, progress, muscle group balance, per exercise stats and recommendations. Args: profile_id; optional period (week, month, year, all).",
	}, h.GetAnalyticsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "estimate_one_rm",
		Description: "Estimates the one-rep max from a lifted weight and reps (brzycki, epley or lander) and derives the target weight, target reps and sets for a training percentage.",
	}, h.EstimateOneRMTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_plan_for_date",
		Description: "Returns the exercises a training program schedules on a date, ordered as planned. Empty when the date is outside the program window or is a rest day. Args: program_id; optional date (YYYY-MM-DD).",
	}, h.GetPlanForDateTool())

	return s
}
