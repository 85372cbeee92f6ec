//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	companies_get "freight/internal/handlers/rest/companies_get"
	order_get "freight/internal/handlers/rest/order_get"
	order_history_get "freight/internal/handlers/rest/order_history_get"
	order_post "freight/internal/handlers/rest/order_post"
	order_status_patch "freight/internal/handlers/rest/order_status_patch"
	orders_get "freight/internal/handlers/rest/orders_get"
	vehicles_get "freight/internal/handlers/rest/vehicles_get"
	"freight/internal/handlers/tasks/stalled_orders"
	"freight/internal/pkg/config"
	actormw "freight/internal/pkg/middlewares/actor"

	companyRepo "freight/internal/repository/company"
	orderRepo "freight/internal/repository/order"
	userRepo "freight/internal/repository/user"
	vehicleRepo "freight/internal/repository/vehicle"
	actorService "freight/internal/service/actor"
	companyService "freight/internal/service/company"
	orderService "freight/internal/service/order"
	vehicleService "freight/internal/service/vehicle"

	"freight/pkg/background"
	"freight/pkg/logger"
	"freight/pkg/querier"
	"freight/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StalledCheckInterval  time.Duration
	StalledOrderThreshold time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceCompany    ServiceCompany
	ServiceVehicle    ServiceVehicle
	ActorResolver     actormw.Resolver
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_get.Service
	order_get.Service
	order_post.Service
	order_history_get.Service
	order_status_patch.Service
}

type ServiceCompany interface {
	companies_get.Service
}

type ServiceVehicle interface {
	vehicles_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service).
// Публикатор событий передается снаружи: main решает, Kafka это или заглушка.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher orderService.StatusEventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStalledCheckInterval,
		provideStalledOrderThreshold,

		provideOrderRepository,
		provideUserRepository,
		provideCompanyRepository,
		provideVehicleRepository,

		provideServiceOrder,
		provideServiceActor,
		provideServiceCompany,
		provideServiceVehicle,

		provideStalledOrdersTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceCompany), new(*companyService.Company)),
		wire.Bind(new(ServiceVehicle), new(*vehicleService.Vehicle)),
		wire.Bind(new(actormw.Resolver), new(*actorService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(actorService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(companyService.Repository), new(*companyRepo.Repository)),
		wire.Bind(new(vehicleService.Repository), new(*vehicleRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stalled_orders.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideCompanyRepository(querier *querier.Querier) *companyRepo.Repository {
	return companyRepo.New(querier)
}

func provideVehicleRepository(querier *querier.Querier) *vehicleRepo.Repository {
	return vehicleRepo.New(querier)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	txManager orderService.TxManager,
	publisher orderService.StatusEventPublisher,
) *orderService.Service {
	return orderService.New(log, repository, txManager, publisher)
}

func provideServiceActor(repository actorService.Repository) *actorService.Service {
	return actorService.New(repository)
}

func provideServiceCompany(repository companyService.Repository) *companyService.Company {
	return companyService.New(repository)
}

func provideServiceVehicle(repository vehicleService.Repository) *vehicleService.Vehicle {
	return vehicleService.New(repository)
}

func provideStalledCheckInterval(cfg *config.Config) StalledCheckInterval {
	return StalledCheckInterval(cfg.Tasks.StalledCheckInterval)
}

func provideStalledOrderThreshold(cfg *config.Config) StalledOrderThreshold {
	return StalledOrderThreshold(cfg.Tasks.StalledOrderThreshold)
}

func provideStalledOrdersTask(
	log logger.Logger,
	orderService stalled_orders.Service,
	interval StalledCheckInterval,
	threshold StalledOrderThreshold,
) *stalled_orders.StalledOrders {
	return stalled_orders.NewStalledOrders(log, orderService, time.Duration(interval), time.Duration(threshold))
}

func provideTaskList(
	stalledOrdersTask *stalled_orders.StalledOrders,
) []background.Task {
	return []background.Task{
		stalledOrdersTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
