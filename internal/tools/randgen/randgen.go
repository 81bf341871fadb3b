// Package randgen implements the jrand command line tool. It draws
// values from a seeded generator, either ephemeral or persisted in a
// SQLite database so later invocations continue the same stream.
package randgen

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/herabit/jrand/internal/core/javarand"
	"github.com/herabit/jrand/internal/entropy"
	"github.com/herabit/jrand/internal/platform/config"
	"github.com/herabit/jrand/internal/services/random"
	"github.com/herabit/jrand/internal/storage"
	"github.com/herabit/jrand/internal/storage/sqlite"
)

// Config holds configuration for a draw invocation.
type Config struct {
	Seed    int64
	Entropy bool
	Kind    string
	Count   int
	Origin  int64
	Bound   int64
	From    float64
	To      float64
	DBPath  string
	Name    string
}

// envConfig carries the environment defaults flags may override.
type envConfig struct {
	DBPath string `env:"JRAND_DB"`
	Name   string `env:"JRAND_NAME"`
}

// ParseConfig parses flags into a Config. JRAND_DB and JRAND_NAME
// provide defaults for -db and -name.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Kind:   string(random.KindInt32),
		Count:  1,
		DBPath: envCfg.DBPath,
		Name:   envCfg.Name,
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the generator (default: 0)")
	fs.BoolVar(&cfg.Entropy, "entropy", cfg.Entropy, "seed from entropy instead of -seed")
	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "draw kind: int32, int32_bounded, int32_range, int64, int64_range, float32, float64, float64_range, bool, gaussian, bytes")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of values to draw (default: 1)")
	fs.Int64Var(&cfg.Origin, "origin", cfg.Origin, "inclusive origin for ranged integer draws")
	fs.Int64Var(&cfg.Bound, "bound", cfg.Bound, "exclusive bound for bounded and ranged integer draws")
	fs.Float64Var(&cfg.From, "from", cfg.From, "inclusive origin for ranged float draws")
	fs.Float64Var(&cfg.To, "to", cfg.To, "exclusive bound for ranged float draws")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path; when set, draws continue a persisted generator (env JRAND_DB)")
	fs.StringVar(&cfg.Name, "name", cfg.Name, "persisted generator name, required with -db (env JRAND_NAME)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run performs the configured draws and writes one value per line to
// out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}

	req := random.DrawRequest{
		Name:        cfg.Name,
		Kind:        random.Kind(cfg.Kind),
		Count:       cfg.Count,
		Origin:      cfg.Origin,
		Bound:       cfg.Bound,
		FloatOrigin: cfg.From,
		FloatBound:  cfg.To,
	}

	var result random.DrawResult
	if cfg.DBPath != "" {
		var err error
		result, err = drawPersisted(ctx, cfg, req)
		if err != nil {
			return err
		}
	} else {
		var err error
		result, err = random.Apply(newGenerator(cfg), req)
		if err != nil {
			return err
		}
	}

	return writeResult(out, req.Kind, result)
}

func newGenerator(cfg Config) *javarand.Random {
	if !cfg.Entropy {
		return javarand.WithSeed(cfg.Seed)
	}
	if hw, ok := entropy.TryNewHardware(); ok {
		return javarand.NewFromEntropy(hw)
	}
	return javarand.New()
}

func drawPersisted(ctx context.Context, cfg Config, req random.DrawRequest) (random.DrawResult, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return random.DrawResult{}, errors.New("name is required with -db")
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return random.DrawResult{}, fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	svc := random.NewService(store)
	if _, err := svc.Snapshot(ctx, req.Name); errors.Is(err, storage.ErrNotFound) {
		if createErr := createGenerator(ctx, svc, cfg); createErr != nil {
			return random.DrawResult{}, createErr
		}
	} else if err != nil {
		return random.DrawResult{}, err
	}

	return svc.Draw(ctx, req)
}

func createGenerator(ctx context.Context, svc *random.Service, cfg Config) error {
	if !cfg.Entropy {
		return svc.Create(ctx, cfg.Name, cfg.Seed)
	}
	if hw, ok := entropy.TryNewHardware(); ok {
		return svc.CreateFromEntropy(ctx, cfg.Name, hw)
	}
	var uniq entropy.Uniquifier
	return svc.CreateFromEntropy(ctx, cfg.Name, &uniq)
}

func writeResult(out io.Writer, kind random.Kind, result random.DrawResult) error {
	switch kind {
	case random.KindBytes:
		_, err := fmt.Fprintln(out, hex.EncodeToString(result.Bytes))
		return err
	case random.KindBool:
		for _, v := range result.Bools {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
	case random.KindFloat32, random.KindFloat64, random.KindFloat64Range, random.KindGaussian:
		for _, v := range result.Floats {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
	default:
		for _, v := range result.Ints {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
	}
	return nil
}
