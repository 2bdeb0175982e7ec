package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository"
	"github.com/Guyuepp/forum-api/internal/repository/memory"
	pgRepo "github.com/Guyuepp/forum-api/internal/repository/postgres"
	"github.com/Guyuepp/forum-api/internal/repository/postgres/model"
	myRedisCache "github.com/Guyuepp/forum-api/internal/repository/redis"
	"github.com/Guyuepp/forum-api/internal/rest"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/usecase/access"
	"github.com/Guyuepp/forum-api/internal/usecase/comment"
	"github.com/Guyuepp/forum-api/internal/usecase/reply"
	"github.com/Guyuepp/forum-api/internal/usecase/thread"
	"github.com/Guyuepp/forum-api/internal/workers"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":5000"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultSQLitePath   = "forum.db"
	defaultBloomRefresh = 10 * time.Minute
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, reading configuration from the environment")
	}

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(lvl)
	}
	if os.Getenv("LOG_FORMAT") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// stores bundles the three storage backends the usecases need.
type stores struct {
	threads  domain.ThreadDBRepository
	comments domain.CommentRepository
	replies  domain.ReplyRepository
}

func main() {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "postgres"
	}

	var st stores
	if driver == "memory" {
		logrus.Warn("DB_DRIVER=memory, nothing will be persisted")
		mem := memory.New()
		st = stores{mem.Threads(), mem.Comments(), mem.Replies()}
	} else {
		db := openDB(driver)
		defer func() {
			sqlDB, err := db.DB()
			if err != nil {
				logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
				return
			}
			if err := sqlDB.Close(); err != nil {
				logrus.Error("got error when closing the DB connection: ", err)
			}
		}()

		if os.Getenv("DB_AUTO_MIGRATE") == "true" {
			if err := db.AutoMigrate(model.All()...); err != nil {
				logrus.Fatal("auto migration failed: ", err)
			}
		}
		st = stores{
			threads:  pgRepo.NewThreadRepository(db),
			comments: pgRepo.NewCommentRepository(db),
			replies:  pgRepo.NewReplyRepository(db),
		}
	}

	// prepare cache
	var (
		threadCache domain.ThreadCache
		bloomRepo   domain.BloomRepository
	)
	if client := openCache(); client != nil {
		defer func() {
			if err := client.Close(); err != nil {
				logrus.Error("got error when closing the cache connection: ", err)
			}
		}()

		bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
		if err != nil || bloomBitSize == 0 {
			logrus.Info("failed to parse bloom bit size, using default size")
			bloomBitSize = defaultBloomBitSize
		}
		threadCache = myRedisCache.NewThreadCache(client)
		bloomRepo = myRedisCache.NewRedisBloomRepo(client, bloomBitSize)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repository协调层
	threadRepo := repository.NewThreadRepository(st.threads, threadCache, bloomRepo)
	if err := threadRepo.InitBloomFilter(ctx); err != nil {
		logrus.Error("failed to init bloom filter: ", err)
		return
	}
	if bloomRepo != nil {
		interval, err := time.ParseDuration(os.Getenv("BLOOM_REFRESH_INTERVAL"))
		if err != nil || interval <= 0 {
			interval = defaultBloomRefresh
		}
		go workers.NewBloomRefreshWorker(threadRepo, interval).Start(ctx)
	}

	// Build service Layer
	verifier := access.NewVerifier(threadRepo, st.comments, st.replies)
	threadSvc := thread.NewService(threadRepo, st.comments, st.replies)
	commentSvc := comment.NewService(st.comments, verifier)
	replySvc := reply.NewService(st.replies, verifier)

	threadHandler := rest.NewThreadHandler(threadSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	replyHandler := rest.NewReplyHandler(replySvc)

	tokenKey := os.Getenv("ACCESS_TOKEN_KEY")
	if tokenKey == "" {
		logrus.Fatal("ACCESS_TOKEN_KEY must be set")
	}
	authMiddleware := middleware.AuthMiddleware(tokenKey)

	// prepare gin
	route := gin.New()
	route.Use(gin.Recovery(), gin.Logger(), middleware.Metrics(), middleware.CORS())
	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil {
		logrus.Info("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	route.Use(middleware.SetRequestContextWithTimeout(time.Duration(timeout) * time.Second))

	// Register routes
	route.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	route.GET("/threads/:threadId", threadHandler.GetByID)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/threads", threadHandler.Store)
		authorized.POST("/threads/:threadId/comments", commentHandler.CreateComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", commentHandler.DeleteComment)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", commentHandler.ToggleLike)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", replyHandler.CreateReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", replyHandler.DeleteReply)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exiting")
}

func dialector(driver string) (gorm.Dialector, error) {
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")

	switch driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			dbHost, dbPort, dbUser, dbPass, dbName)
		return postgres.Open(dsn), nil
	case "mysql":
		cfg := mysqlDriver.NewConfig()
		cfg.User = dbUser
		cfg.Passwd = dbPass
		cfg.Net = "tcp"
		cfg.Addr = dbHost + ":" + dbPort
		cfg.DBName = dbName
		cfg.ParseTime = true
		cfg.Loc = time.UTC
		// report matched rows so a repeated soft delete is not mistaken for a missing row
		cfg.ClientFoundRows = true
		return mysql.Open(cfg.FormatDSN()), nil
	case "sqlite":
		path := dbName
		if path == "" {
			path = defaultSQLitePath
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func openDB(driver string) *gorm.DB {
	dial, err := dialector(driver)
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := retry(dbMaxRetry, dbRetryIntervalSec*time.Second, func() (*gorm.DB, error) {
		db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, fmt.Errorf("open connection: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB from gorm.DB: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		return db, nil
	})
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}
	return db
}

// retry calls connect up to attempts times and waits interval before every
// attempt but the first, whichever step of the previous attempt failed.
func retry[T any](attempts int, interval time.Duration, connect func() (T, error)) (T, error) {
	var (
		res T
		err error
	)
	for i := range attempts {
		if i > 0 {
			time.Sleep(interval)
		}
		if res, err = connect(); err == nil {
			return res, nil
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, attempts, err)
	}
	return res, err
}

// openCache returns nil when CACHE_HOST is unset; the API then runs without
// the bloom filter and the thread cache.
func openCache() *redis.Client {
	cacheHost := os.Getenv("CACHE_HOST")
	if cacheHost == "" {
		return nil
	}
	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + os.Getenv("CACHE_PORT"),
		Password: os.Getenv("CACHE_PASS"),
		DB:       cacheDB,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}
	return client
}
