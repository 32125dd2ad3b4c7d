package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"clinic-crm/internal/auth"
	"clinic-crm/internal/config"
	"clinic-crm/internal/drafts"
	"clinic-crm/internal/events"
	"clinic-crm/internal/grpcweb"
	"clinic-crm/internal/handler"
	"clinic-crm/internal/middleware"
	"clinic-crm/internal/observability/metrics"
	"clinic-crm/internal/rpc"
	"clinic-crm/internal/server"
	"clinic-crm/internal/store"
	"clinic-crm/pkg/logging"
	"clinic-crm/pkg/obs"
)

const serviceName = "clinic-crm"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	log := logging.New(cfg.LogLevel)
	ctx := context.Background()

	shutdownTracer, err := obs.InitTracer(ctx, serviceName, cfg.Env, cfg.OTLPEndpoint)
	if err != nil {
		log.WithError(err).Fatal("tracer")
	}

	draftStore, closeDrafts, err := openDrafts(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("drafts")
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		p, err := events.DialAMQP(cfg.AMQPURL, cfg.EventsExchange, log)
		if err != nil {
			log.WithError(err).Fatal("amqp")
		}
		publisher = p
		log.WithField("exchange", cfg.EventsExchange).Info("publishing appointment events")
	}

	rpcMetrics := metrics.NewRPCMetrics(prometheus.DefaultRegisterer)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	h := handler.New(store.New(), tokens,
		handler.WithDrafts(draftStore),
		handler.WithEvents(publisher),
		handler.WithMetrics(rpcMetrics),
		handler.WithLogger(log),
	)

	// grpc server
	rl := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	defer rl.Close()
	srv := grpc.NewServer(
		grpc.ForceServerCodec(rpc.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.Tracing(),
			middleware.Metrics(rpcMetrics),
			middleware.RateLimit(rl),
			middleware.Auth(tokens),
		),
	)
	rpc.RegisterCRMServer(srv, h)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.WithError(err).Fatal("listen")
	}
	go func() {
		log.WithField("port", cfg.GRPCPort).Info("grpc listening")
		if err := srv.Serve(lis); err != nil {
			log.WithError(err).Error("grpc")
		}
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	conn, err := grpc.NewClient("localhost:"+cfg.GRPCPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.WithError(err).Fatal("bridge dial")
	}
	defer conn.Close()

	httpSrv := &http.Server{
		Addr: ":" + cfg.WebPort,
		Handler: server.NewRouter(server.Config{
			Logger:  log,
			GRPCWeb: grpcweb.New(conn, cfg.CORSAllowedOrigins, log),
			Metrics: promhttp.Handler(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithField("port", cfg.WebPort).Info("http listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("http")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down")

	sctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(sctx); err != nil {
		log.WithError(err).Warn("http shutdown")
	}
	srv.GracefulStop()
	if err := publisher.Close(); err != nil {
		log.WithError(err).Warn("amqp close")
	}
	closeDrafts()
	if err := shutdownTracer(sctx); err != nil {
		log.WithError(err).Warn("tracer shutdown")
	}
}

func openDrafts(ctx context.Context, cfg config.App, log logrus.FieldLogger) (drafts.Store, func(), error) {
	switch cfg.DraftBackend {
	case config.DraftsRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, err
		}
		log.WithField("addr", cfg.RedisAddr).Info("drafts in redis")
		return drafts.NewRedis(client, cfg.DraftTTL), func() { client.Close() }, nil

	case config.DraftsPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		pg := drafts.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info("drafts in postgres")
		return pg, pool.Close, nil
	}
	return drafts.NewMemory(), func() {}, nil
}
