package root

import (
	"context"
	"database/sql"
	"os"

	"mindquest/internal/ai"
	"mindquest/internal/engine"
	"mindquest/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(db)

	cfg := ai.LoadConfig()
	if cfg.Enabled() {
		client := ai.NewGeminiClient(cfg, aiObserver(cfg))
		svc.SetEvaluator(ai.NewQuestEvaluator(client))
		svc.SetGenerator(ai.NewQuestGenerator(client))
	}
	return svc, cleanup, nil
}

// openAIClient is for commands that talk to the model directly (chat).
func openAIClient() (ai.Client, error) {
	cfg := ai.LoadConfig()
	if !cfg.Enabled() {
		return nil, engine.ErrAINotConfigured
	}
	return ai.NewGeminiClient(cfg, aiObserver(cfg)), nil
}

func aiObserver(cfg ai.Config) ai.Observer {
	if cfg.LogCalls {
		return ai.NewLogObserver(os.Stderr)
	}
	return ai.NoopObserver{}
}
