// Package main runs the training MCP server over stdio, for local assistants
// that want analytics, 1RM estimates and program plans as tools.
package main

import (
	"context"
	"flag"
	"net"
	"os"

	"github.com/2beens/trainingtracker/internal/config"
	"github.com/2beens/trainingtracker/internal/db"
	"github.com/2beens/trainingtracker/internal/logging"
	"github.com/2beens/trainingtracker/internal/telemetry/metrics"
	"github.com/2beens/trainingtracker/internal/training/catalog"
	"github.com/2beens/trainingtracker/internal/training/logs"
	trainingmcp "github.com/2beens/trainingtracker/internal/training/mcp"
	"github.com/2beens/trainingtracker/internal/training/profiles"
	"github.com/2beens/trainingtracker/internal/training/programs"
	"github.com/2beens/trainingtracker/internal/training/stats"

	"github.com/go-redis/redis/v8"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	log.SetLevel(logging.GetLevel(cfg.LogLevel))
	log.AddHook(logging.NewFieldsHook(log.Fields{
		"service": "training-mcp",
		"env":     cfg.Environment,
	}))

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("TRAINING_DB_PASSWORD"),
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("TRAINING_REDIS_PASS"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	catalogRepo := catalog.NewRepo(dbPool)
	statsService := stats.NewService(
		profiles.NewRepo(dbPool),
		logs.NewRepo(dbPool),
		catalog.NewMuscleGroupCache(catalogRepo, cfg.CatalogCacheSizeMB, cfg.MuscleGroupCacheTTL.Duration),
		stats.NewCache(rdb, cfg.AnalyticsCacheTTL.Duration),
		// not exported anywhere, the stdio server has no metrics listener
		metrics.NewManager("training", "mcp", prometheus.NewRegistry()),
	)

	service := trainingmcp.NewContextService(
		trainingmcp.NewPoolSchemaRepo(dbPool),
		statsService,
		programs.NewRepo(dbPool),
	)
	server := trainingmcp.NewServer(service)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
