package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/internal/training/analytics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=cache_mocks_test.go -package=catalog_test

type muscleGroupsSource interface {
	MuscleGroups(ctx context.Context) (map[string]string, error)
}

// MuscleGroupCache keeps the exercise -> muscle group mapping in process.
// Exercises missing from the catalog are cached as analytics.UnknownMuscleGroup.
type MuscleGroupCache struct {
	source muscleGroupsSource
	cache  *freecache.Cache
	ttl    time.Duration
}

func NewMuscleGroupCache(source muscleGroupsSource, sizeMB int, ttl time.Duration) *MuscleGroupCache {
	return &MuscleGroupCache{
		source: source,
		cache:  freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:    ttl,
	}
}

// Resolve returns the muscle group of every given exercise. The source is
// queried at most once per call, and only when some name is not cached.
func (c *MuscleGroupCache) Resolve(ctx context.Context, exercises []string) (_ map[string]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.catalog.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	resolved := make(map[string]string, len(exercises))
	var missing []string
	for _, name := range exercises {
		group, err := c.cache.Get([]byte(name))
		if err != nil {
			if !errors.Is(err, freecache.ErrNotFound) {
				log.Warnf("muscle group cache get [%s]: %s", name, err)
			}
			missing = append(missing, name)
			continue
		}
		resolved[name] = string(group)
	}
	span.SetAttributes(attribute.Int("missing", len(missing)))
	if len(missing) == 0 {
		return resolved, nil
	}

	groups, err := c.source.MuscleGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("load muscle groups: %w", err)
	}

	expireSeconds := int(c.ttl.Seconds())
	for name, group := range groups {
		if group == "" {
			group = analytics.UnknownMuscleGroup
		}
		if err := c.cache.Set([]byte(name), []byte(group), expireSeconds); err != nil {
			log.Warnf("muscle group cache set [%s]: %s", name, err)
		}
	}
	for _, name := range missing {
		group, ok := groups[name]
		if !ok || group == "" {
			group = analytics.UnknownMuscleGroup
			if err := c.cache.Set([]byte(name), []byte(group), expireSeconds); err != nil {
				log.Warnf("muscle group cache set [%s]: %s", name, err)
			}
		}
		resolved[name] = group
	}

	return resolved, nil
}

// Forget drops a single exercise, e.g. after it was added to or removed
// from the catalog.
func (c *MuscleGroupCache) Forget(exercise string) {
	c.cache.Del([]byte(exercise))
}

func (c *MuscleGroupCache) Clear() {
	c.cache.Clear()
}
