package deps

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"

	"openhours/internal/config"
	"openhours/internal/core/domain/hours"
	dl "openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	drl "openhours/internal/core/domain/rate_limiter"
	dbplace "openhours/internal/db/place"
	holidaycalendar "openhours/internal/implementations/holiday_calendar"
	"openhours/internal/implementations/logging"
	openinghoursparser "openhours/internal/implementations/opening_hours_parser"
	ratelimiter "openhours/internal/implementations/rate_limiter"
	solarevents "openhours/internal/implementations/solar_events"
	sserelay "openhours/internal/implementations/sse_relay"
	statusstore "openhours/internal/implementations/status_store"
	"openhours/internal/rabbitmq"
	statuschanged "openhours/internal/rabbitmq/publishers/status_changed"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	Engine *hours.Engine

	PlaceRepository place.Repository
	StatusStore     place.StatusStore

	RateLimiter drl.RateLimiter

	// StatusPublisher sends changes to the queue, StatusRelay pushes
	// consumed ones to SSE clients.
	StatusPublisher place.StatusNotifier
	StatusRelay     *sserelay.Relay
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.initEngine()

	deps.PlaceRepository = dbplace.NewPgxPlaceRepository(deps.DB)
	deps.StatusStore = statusstore.NewRedis(deps.Redis, deps.Config.StatusTTL)
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.StatusRelay = sserelay.New(deps.Logger, deps.SseServer, sserelay.STREAM)

	closeStatusPublisher := deps.initStatusPublisher()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeStatusPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initEngine() {
	holidays, err := holidaycalendar.NewDefault(deps.Config.HolidaysFile)
	if err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not load holidays.",
			dl.Entry("err", err),
			dl.Entry("path", deps.Config.HolidaysFile),
		)
		panic(err)
	}
	deps.Engine = hours.NewEngine(
		openinghoursparser.New(),
		solarevents.New(),
		holidays,
		hours.EngineOptions{
			DefaultRegion:      deps.Config.DefaultRegion(),
			ReferenceMonthdays: deps.Config.ReferenceMonthdays,
		},
	)
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initStatusPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.DeclareQueue(deps.Config.StatusChangedQueue); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not create RabbitMQ queue.",
			dl.Entry("err", err),
			dl.Entry("queue", deps.Config.StatusChangedQueue),
		)
		panic(err)
	}

	deps.StatusPublisher = statuschanged.NewRabbitMQ(deps.Logger, rabbitmqChannel, deps.Config.StatusChangedQueue)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down status publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Status publisher shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = false
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}
