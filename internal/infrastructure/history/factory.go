package history

import (
	"context"
	"fmt"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/pkg/filesystem"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// Open builds the store selected by the history settings.
// Stores that hold resources implement io.Closer.
func Open(ctx context.Context, settings domain.HistorySettings) (ports.HistoryRepository, error) {
	switch settings.Backend {
	case domain.HistoryBackendSQLite, "":
		return NewSQLiteStore(pathOr(settings.Path, "history.db")), nil
	case domain.HistoryBackendFile:
		return NewFileStore(pathOr(settings.Path, "history.jsonl")), nil
	case domain.HistoryBackendRedis:
		client, err := NewRedisClient(ctx, settings.RedisURL)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, settings.RedisKey), nil
	case domain.HistoryBackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported history backend: %s", settings.Backend)
	}
}

func pathOr(path, name string) string {
	if path != "" {
		return filesystem.ExpandPath(path)
	}
	return filesystem.AppDir("history", name)
}
