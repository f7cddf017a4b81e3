package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/grupo99/catalog-service/internal/config"
	partrepo "github.com/grupo99/catalog-service/internal/repository/part"
	svcrepo "github.com/grupo99/catalog-service/internal/repository/service"
	partsvc "github.com/grupo99/catalog-service/internal/service/part"
	svcsvc "github.com/grupo99/catalog-service/internal/service/service"
	"github.com/grupo99/catalog-service/internal/transport/http/middleware"
	parthttp "github.com/grupo99/catalog-service/internal/transport/http/part/v1"
	svchttp "github.com/grupo99/catalog-service/internal/transport/http/service/v1"
	"github.com/grupo99/catalog-service/pkg/closer"
)

// Handler is anything that can mount its routes behind the auth middleware.
type Handler interface {
	Routes(auth *middleware.Auth) chi.Router
}

type di struct {
	mongo        *mongo.Client
	partsColl    *mongo.Collection
	servicesColl *mongo.Collection

	partRepository    partsvc.PartRepository
	serviceRepository svcsvc.ServiceRepository

	partService    parthttp.PartService
	serviceService svchttp.ServiceService

	auth           *middleware.Auth
	partHandler    Handler
	serviceHandler Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

// PartsCollection returns the parts collection. No secondary indexes are
// created on purpose: every filtered query is a full scan with a
// server-evaluated filter, and an index would change that contract.
func (d *di) PartsCollection(ctx context.Context) *mongo.Collection {
	if d.partsColl == nil {
		d.partsColl = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.PartsCollection())
	}

	return d.partsColl
}

func (d *di) ServicesCollection(ctx context.Context) *mongo.Collection {
	if d.servicesColl == nil {
		d.servicesColl = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.ServicesCollection())
	}

	return d.servicesColl
}

func (d *di) PartRepository(ctx context.Context) partsvc.PartRepository {
	if d.partRepository == nil {
		d.partRepository = partrepo.NewPartRepository(d.PartsCollection(ctx))
	}

	return d.partRepository
}

func (d *di) ServiceRepository(ctx context.Context) svcsvc.ServiceRepository {
	if d.serviceRepository == nil {
		d.serviceRepository = svcrepo.NewServiceRepository(d.ServicesCollection(ctx))
	}

	return d.serviceRepository
}

func (d *di) PartService(ctx context.Context) parthttp.PartService {
	if d.partService == nil {
		d.partService = partsvc.NewPartService(
			d.PartRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.partService
}

func (d *di) ServiceService(ctx context.Context) svchttp.ServiceService {
	if d.serviceService == nil {
		d.serviceService = svcsvc.NewServiceService(
			d.ServiceRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.serviceService
}

func (d *di) Auth(_ context.Context) *middleware.Auth {
	if d.auth == nil {
		d.auth = middleware.NewAuth(config.C().Auth.JWTSecret())
	}

	return d.auth
}

func (d *di) PartHandler(ctx context.Context) Handler {
	if d.partHandler == nil {
		d.partHandler = parthttp.NewPartHandler(d.PartService(ctx))
	}

	return d.partHandler
}

func (d *di) ServiceHandler(ctx context.Context) Handler {
	if d.serviceHandler == nil {
		d.serviceHandler = svchttp.NewServiceHandler(d.ServiceService(ctx))
	}

	return d.serviceHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
