package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/empreweb/empreweb-backend/config"
	"github.com/empreweb/empreweb-backend/internal/content/repository"
	"github.com/empreweb/empreweb-backend/internal/storage/mongodb"
	"github.com/empreweb/empreweb-backend/internal/storage/postgres"
	"github.com/empreweb/empreweb-backend/internal/storage/redisdb"
)

type StoreOptions struct {
	Config    config.StoreConfig
	ConnectTO time.Duration
}

// OpenStore connects the content store selected by CONTENT_STORE.
func OpenStore(ctx context.Context, opt StoreOptions) (repository.Store, error) {
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 10 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	switch opt.Config.Driver {
	case config.StoreMongo:
		s, err := mongodb.Open(cctx, mongodb.Options{
			URI:      opt.Config.Mongo.URI,
			Database: opt.Config.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StoreRedis:
		s, err := redisdb.Open(cctx, redisdb.Options{
			Addr:     opt.Config.Redis.Addr,
			Password: opt.Config.Redis.Password,
			DB:       opt.Config.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorePostgres:
		s, err := postgres.Open(cctx, &opt.Config.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown content store %q", opt.Config.Driver)
	}
}
