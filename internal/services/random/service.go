// Package random provides the caller-facing service over persisted
// generators: named deterministic streams whose state survives
// process restarts without perturbing their output sequence.
package random

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/herabit/jrand/internal/core/javarand"
	"github.com/herabit/jrand/internal/entropy"
	"github.com/herabit/jrand/internal/storage"
)

// ErrStoreRequired indicates a service without a configured store.
var ErrStoreRequired = errors.New("storage is not configured")

// ErrNameRequired indicates a request without a generator name.
var ErrNameRequired = errors.New("generator name is required")

// ErrAlreadyExists indicates a create request for a name already in
// use.
var ErrAlreadyExists = errors.New("generator already exists")

// ErrInvalidBound indicates a bounded draw with a non-positive bound
// or a bound outside the draw kind's integer range.
var ErrInvalidBound = errors.New("bound must be positive and within the draw kind's range")

// ErrInvalidCount indicates a draw request for a non-positive number
// of values.
var ErrInvalidCount = errors.New("count must be positive")

// ErrUnknownKind indicates an unrecognized draw kind.
var ErrUnknownKind = errors.New("unknown draw kind")

// Kind selects which derived-value algorithm a draw request uses.
type Kind string

const (
	KindInt32        Kind = "int32"
	KindInt32Bounded Kind = "int32_bounded"
	KindInt32Range   Kind = "int32_range"
	KindInt64        Kind = "int64"
	KindInt64Range   Kind = "int64_range"
	KindFloat32      Kind = "float32"
	KindFloat64      Kind = "float64"
	KindFloat64Range Kind = "float64_range"
	KindBool         Kind = "bool"
	KindGaussian     Kind = "gaussian"
	KindBytes        Kind = "bytes"
)

// DrawRequest describes one batch of draws from a named generator.
// Origin and Bound apply to the ranged and bounded integer kinds;
// FloatOrigin and FloatBound to the ranged float kind.
type DrawRequest struct {
	Name        string
	Kind        Kind
	Count       int
	Origin      int64
	Bound       int64
	FloatOrigin float64
	FloatBound  float64
}

// DrawResult carries the drawn values in the slice matching the
// request kind, plus the generator state after the batch.
type DrawResult struct {
	Ints   []int64
	Floats []float64
	Bools  []bool
	Bytes  []byte
	State  javarand.State
}

// Service orchestrates persisted generators over a GeneratorStore.
// Each draw loads the stored state, applies the batch, and persists
// the successor state, so a stream continues bit-exactly across
// processes.
type Service struct {
	store  storage.GeneratorStore
	tracer trace.Tracer
	clock  func() time.Time
}

// NewService creates a service over the given store.
func NewService(store storage.GeneratorStore) *Service {
	return &Service{
		store:  store,
		tracer: otel.Tracer("github.com/herabit/jrand/internal/services/random"),
		clock:  time.Now,
	}
}

// Create registers a new generator under name, seeded explicitly.
func (s *Service) Create(ctx context.Context, name string, seed int64) (err error) {
	if s == nil || s.store == nil {
		return ErrStoreRequired
	}
	ctx, span := s.tracer.Start(ctx, "random.Create")
	defer func() { endSpan(span, err) }()

	name, err = s.checkName(ctx, name)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("generator.name", name))

	return s.put(ctx, name, javarand.WithSeed(seed).State())
}

// CreateFromEntropy registers a new generator under name, seeded with
// one draw from src.
func (s *Service) CreateFromEntropy(ctx context.Context, name string, src entropy.Source) (err error) {
	if s == nil || s.store == nil {
		return ErrStoreRequired
	}
	ctx, span := s.tracer.Start(ctx, "random.CreateFromEntropy")
	defer func() { endSpan(span, err) }()

	name, err = s.checkName(ctx, name)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("generator.name", name))

	return s.put(ctx, name, javarand.NewFromEntropy(src).State())
}

// Draw applies one batch of draws to a named generator and persists
// the resulting state.
func (s *Service) Draw(ctx context.Context, req DrawRequest) (result DrawResult, err error) {
	if s == nil || s.store == nil {
		return DrawResult{}, ErrStoreRequired
	}
	ctx, span := s.tracer.Start(ctx, "random.Draw", trace.WithAttributes(
		attribute.String("generator.name", req.Name),
		attribute.String("draw.kind", string(req.Kind)),
		attribute.Int("draw.count", req.Count),
	))
	defer func() { endSpan(span, err) }()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return DrawResult{}, ErrNameRequired
	}
	record, err := s.store.Get(ctx, name)
	if err != nil {
		return DrawResult{}, err
	}
	r := javarand.FromState(record.State)

	result, err = Apply(r, req)
	if err != nil {
		return DrawResult{}, err
	}
	result.State = r.State()

	if err := s.put(ctx, name, result.State); err != nil {
		return DrawResult{}, err
	}
	return result, nil
}

// Snapshot returns the persisted state of a named generator.
func (s *Service) Snapshot(ctx context.Context, name string) (state javarand.State, err error) {
	if s == nil || s.store == nil {
		return javarand.State{}, ErrStoreRequired
	}
	ctx, span := s.tracer.Start(ctx, "random.Snapshot")
	defer func() { endSpan(span, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return javarand.State{}, ErrNameRequired
	}
	span.SetAttributes(attribute.String("generator.name", name))

	record, err := s.store.Get(ctx, name)
	if err != nil {
		return javarand.State{}, err
	}
	return record.State, nil
}

// List returns all persisted generator records.
func (s *Service) List(ctx context.Context) (records []storage.GeneratorRecord, err error) {
	if s == nil || s.store == nil {
		return nil, ErrStoreRequired
	}
	ctx, span := s.tracer.Start(ctx, "random.List")
	defer func() { endSpan(span, err) }()

	return s.store.List(ctx)
}

// Delete removes a named generator.
func (s *Service) Delete(ctx context.Context, name string) (err error) {
	if s == nil || s.store == nil {
		return ErrStoreRequired
	}
	ctx, span := s.tracer.Start(ctx, "random.Delete")
	defer func() { endSpan(span, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	return s.store.Delete(ctx, name)
}

func (s *Service) checkName(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	_, err := s.store.Get(ctx, name)
	switch {
	case err == nil:
		return "", ErrAlreadyExists
	case errors.Is(err, storage.ErrNotFound):
		return name, nil
	default:
		return "", err
	}
}

func (s *Service) put(ctx context.Context, name string, state javarand.State) error {
	return s.store.Put(ctx, storage.GeneratorRecord{
		Name:      name,
		State:     state,
		UpdatedAt: s.clock().UTC(),
	})
}

// validateBounds rejects invalid parameters before the core is
// reached; the core treats a bad bound as programmer error and
// panics, which a validated service request must never trigger.
func validateBounds(req DrawRequest) error {
	switch req.Kind {
	case KindInt32Bounded:
		if req.Bound <= 0 || req.Bound > math.MaxInt32 {
			return ErrInvalidBound
		}
	case KindInt32Range:
		if req.Origin < math.MinInt32 || req.Origin > math.MaxInt32 ||
			req.Bound < math.MinInt32 || req.Bound > math.MaxInt32 {
			return ErrInvalidBound
		}
	}
	return nil
}

// Apply validates req and performs its draws against r, mutating the
// generator in place. The returned result carries the drawn values
// but not the successor state; callers that persist capture r.State
// themselves.
func Apply(r *javarand.Random, req DrawRequest) (DrawResult, error) {
	var result DrawResult

	if req.Count <= 0 {
		return DrawResult{}, ErrInvalidCount
	}
	if err := validateBounds(req); err != nil {
		return DrawResult{}, err
	}

	switch req.Kind {
	case KindInt32:
		for range req.Count {
			result.Ints = append(result.Ints, int64(r.NextInt32()))
		}
	case KindInt32Bounded:
		for range req.Count {
			result.Ints = append(result.Ints, int64(r.NextInt32Bounded(int32(req.Bound))))
		}
	case KindInt32Range:
		for range req.Count {
			result.Ints = append(result.Ints, int64(r.NextInt32Range(int32(req.Origin), int32(req.Bound))))
		}
	case KindInt64:
		for range req.Count {
			result.Ints = append(result.Ints, r.NextInt64())
		}
	case KindInt64Range:
		for range req.Count {
			result.Ints = append(result.Ints, r.NextInt64Range(req.Origin, req.Bound))
		}
	case KindFloat32:
		for range req.Count {
			result.Floats = append(result.Floats, float64(r.NextFloat32()))
		}
	case KindFloat64:
		for range req.Count {
			result.Floats = append(result.Floats, r.NextFloat64())
		}
	case KindFloat64Range:
		for range req.Count {
			result.Floats = append(result.Floats, r.NextFloat64Range(req.FloatOrigin, req.FloatBound))
		}
	case KindBool:
		for range req.Count {
			result.Bools = append(result.Bools, r.NextBool())
		}
	case KindGaussian:
		for range req.Count {
			result.Floats = append(result.Floats, r.NextGaussian())
		}
	case KindBytes:
		result.Bytes = make([]byte, req.Count)
		r.NextBytes(result.Bytes)
	default:
		return DrawResult{}, ErrUnknownKind
	}

	return result, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
