package mcp

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/2beens/trainingtracker/internal/training/analytics"
	"github.com/2beens/trainingtracker/internal/training/calendar"
)

type analyticsSource interface {
	Analytics(ctx context.Context, profileID int, period analytics.Period) (*analytics.Analytics, error)
}

type programsSource interface {
	Get(ctx context.Context, id int) (*calendar.Program, error)
	ListExercises(ctx context.Context, programID int) ([]calendar.ProgramExercise, error)
}

// contextService is what the tool handlers need, kept narrow for tests.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetAnalytics(ctx context.Context, profileID int, period analytics.Period) (*analytics.Analytics, error)
	GetPlanForDate(ctx context.Context, programID int, date time.Time) ([]calendar.ProgramExercise, error)
}

type ContextService struct {
	schema    SchemaRepo
	analytics analyticsSource
	programs  programsSource
}

func NewContextService(schemaRepo SchemaRepo, stats analyticsSource, programs programsSource) *ContextService {
	return &ContextService{
		schema:    schemaRepo,
		analytics: stats,
		programs:  programs,
	}
}

func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.TrainingColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Training DB Schema\n\nNo training tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	var b strings.Builder
	b.WriteString("# Training DB Schema\n\n")
	for _, tableName := range slices.Sorted(maps.Keys(byTable)) {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) GetAnalytics(ctx context.Context, profileID int, period analytics.Period) (*analytics.Analytics, error) {
	return s.analytics.Analytics(ctx, profileID, period)
}

// GetPlanForDate resolves the exercises a program schedules on date.
func (s *ContextService) GetPlanForDate(ctx context.Context, programID int, date time.Time) ([]calendar.ProgramExercise, error) {
	program, err := s.programs.Get(ctx, programID)
	if err != nil {
		return nil, err
	}
	slots, err := s.programs.ListExercises(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("list program exercises: %w", err)
	}
	return calendar.ResolvePlanForDate(*program, slots, date), nil
}
