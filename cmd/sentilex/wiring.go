package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/sentilex/internal/config"
	"github.com/kailas-cloud/sentilex/internal/db"
	dbRedis "github.com/kailas-cloud/sentilex/internal/db/redis"
	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
	"github.com/kailas-cloud/sentilex/internal/domain/lexicon"
	nlpprose "github.com/kailas-cloud/sentilex/internal/nlp/prose"
	"github.com/kailas-cloud/sentilex/internal/nlp/rules"
	"github.com/kailas-cloud/sentilex/internal/repository/dictionary"
	"github.com/kailas-cloud/sentilex/internal/repository/resultlog"
	analysisuc "github.com/kailas-cloud/sentilex/internal/usecase/analysis"
)

// resultSink is what every result log driver provides.
type resultSink interface {
	Append(ctx context.Context, r *domanalysis.Result) error
	Recent(ctx context.Context, n int) ([]domanalysis.Record, error)
	Ping(ctx context.Context) error
	Close() error
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.Load(o.env)
}

func loadLexicon(cfg config.LexiconConfig) (*lexicon.Lexicon, error) {
	specs := make([]dictionary.Spec, len(cfg.Dictionaries))
	for i, d := range cfg.Dictionaries {
		specs[i] = dictionary.Spec{Name: d.Name, Path: d.Path}
	}
	return dictionary.Load(specs)
}

func newEngine(name string) (analysisuc.Splitter, analysisuc.POSTagger, error) {
	if name == "rules" {
		return rules.NewSplitter(), rules.NewTagger(), nil
	}
	e, err := nlpprose.New()
	if err != nil {
		return nil, nil, err
	}
	return e, e, nil
}

func newAnalysisService(cfg config.Config, lex *lexicon.Lexicon, logger *zap.Logger) (*analysisuc.Service, error) {
	splitter, tagger, err := newEngine(cfg.NLP.Engine)
	if err != nil {
		return nil, fmt.Errorf("create %s engine: %w", cfg.NLP.Engine, err)
	}
	return analysisuc.New(splitter, tagger, lex, analysisuc.MatchOn(cfg.Lexicon.MatchOn)).WithLogger(logger), nil
}

func openResultLog(ctx context.Context, cfg config.ResultLogConfig, logger *zap.Logger) (resultSink, error) {
	switch resultlog.Driver(cfg.Driver) {
	case resultlog.DriverFile:
		sink, err := resultlog.OpenFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		return sink, nil
	case resultlog.DriverSQLite:
		sink, err := resultlog.OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return sink, nil
	case resultlog.DriverRedis:
		store, err := newRedisStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return resultlog.NewRedisSink(store, cfg.Key, cfg.MaxEntries, logger), nil
	case resultlog.DriverNone:
		return resultlog.Discard{}, nil
	default:
		return nil, fmt.Errorf("unknown result log driver %q", cfg.Driver)
	}
}

func newRedisStore(ctx context.Context, cfg config.ResultLogConfig) (db.Store, error) {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Addrs,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create redis store: %w", err)
	}
	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("redis not ready: %w", err)
	}
	return store, nil
}
