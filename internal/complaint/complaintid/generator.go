// internal/complaint/complaintid/generator.go
package complaintid

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"tgrera-complaint-form/internal/common/errors"
	"tgrera-complaint-form/internal/common/logger"
)

const (
	DefaultPrefix = "TGRERA/COMP"

	suffixMin   = 1000
	suffixRange = 9000
)

// Issued is a generated identifier and the instant it was generated for.
type Issued struct {
	ID string
	At time.Time
}

// Generator builds <prefix>/<yyyy>/<mm><dd><rand4> identifiers.
type Generator struct {
	prefix      string
	loc         *time.Location
	now         func() time.Time
	intn        func(n int) int
	registry    Registry
	maxAttempts int
	logger      logger.Logger
}

type Option func(*Generator)

func WithPrefix(prefix string) Option {
	return func(g *Generator) { g.prefix = prefix }
}

func WithLocation(loc *time.Location) Option {
	return func(g *Generator) { g.loc = loc }
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRandom replaces the source of the 4-digit suffix. intn must return a
// value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(g *Generator) { g.intn = intn }
}

func WithRegistry(r Registry) Option {
	return func(g *Generator) { g.registry = r }
}

func WithMaxAttempts(n int) Option {
	return func(g *Generator) { g.maxAttempts = n }
}

func NewGenerator(log logger.Logger, opts ...Option) *Generator {
	g := &Generator{
		prefix:      DefaultPrefix,
		loc:         time.Local,
		now:         time.Now,
		intn:        rand.IntN,
		maxAttempts: 5,
		logger:      logger.ForComponent(log, "complaintid"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.registry == nil {
		g.registry = NewMemoryRegistry()
	}
	if g.maxAttempts < 1 {
		g.maxAttempts = 1
	}
	return g
}

// Format renders an identifier for t with the given 4-digit suffix.
func Format(prefix string, t time.Time, suffix int) string {
	return fmt.Sprintf("%s/%04d/%02d%02d%d", prefix, t.Year(), int(t.Month()), t.Day(), suffix)
}

// Generate draws identifiers until the registry accepts one.
func (g *Generator) Generate(ctx context.Context) (Issued, error) {
	at := g.now().In(g.loc)
	ttl := endOfDay(at).Sub(at)

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		id := Format(g.prefix, at, suffixMin+g.intn(suffixRange))

		ok, err := g.registry.Reserve(ctx, id, ttl)
		if err != nil {
			g.logger.Error("complaint id registry unavailable", map[string]interface{}{
				"error":   err.Error(),
				"attempt": attempt,
			})
			return Issued{}, errors.NewIDRegistryFailedError(err)
		}
		if ok {
			g.logger.Debug("complaint id issued", map[string]interface{}{
				"complaintId": id,
				"attempt":     attempt,
			})
			return Issued{ID: id, At: at}, nil
		}

		g.logger.Warn("complaint id collision", map[string]interface{}{
			"complaintId": id,
			"attempt":     attempt,
		})
	}

	return Issued{}, errors.NewIDGenerationFailedError(g.maxAttempts)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
