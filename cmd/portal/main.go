package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/config"
	httpapi "github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/http"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/images"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/logger"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/rotation"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/service"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "portal")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// local persistent store: redis when reachable, in-memory otherwise
	var kv store.KV
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn("Redis unreachable, using in-memory store (overrides and todos will not survive restart)", zap.Error(err))
		kv = store.NewMemoryKV()
	} else {
		kv = store.NewRedisKV(redisClient)
	}

	// employee directory: postgres when enabled and reachable, otherwise
	// the workbook-seeded memory repo
	var employeesRepo repository.EmployeesRepository
	var db *sql.DB
	if cfg.DBEnabled {
		if d, err := openPostgres(cfg.Database); err == nil {
			db = d
			employeesRepo = repository.NewPostgresEmployeesRepo(db)
			log.Info("Employee directory backed by postgres")
		} else {
			log.Warn("DB enabled but connection failed, falling back to memory repo", zap.Error(err))
		}
	}
	if employeesRepo == nil {
		seed, err := repository.ParseWorkbook(cfg.WorkbookPath)
		if err != nil {
			log.Warn("Failed to load employee workbook, starting with an empty directory",
				zap.String("workbook", cfg.WorkbookPath),
				zap.Error(err),
			)
		}
		employeesRepo = repository.NewMemoryEmployeesRepo(seed)
	}

	resolver := images.NewResolver(kv, log)

	employeeSvc := service.NewEmployeeService(employeesRepo, resolver, cfg.WorkbookPath, log)
	newsSvc := service.NewNewsService(repository.NewMemoryNewsRepo(), log)
	taskSvc := service.NewTaskService(repository.NewMemoryTasksRepo(), log)
	knowledgeSvc := service.NewKnowledgeService(repository.NewMemoryKnowledgeRepo(), log)
	helpSvc := service.NewHelpService(repository.NewMemoryHelpRepo(), log)
	policySvc := service.NewPolicyService(repository.NewMemoryPoliciesRepo(), log)
	workflowSvc := service.NewWorkflowService(repository.NewMemoryWorkflowsRepo(), log)
	attendanceSvc := service.NewAttendanceService(repository.NewMemoryAttendanceRepo(), log)
	hierarchySvc := service.NewHierarchyService(repository.NewMemoryHierarchyRepo(), log)
	todoSvc := service.NewTodoService(store.NewTodoStore(kv), log)
	chatSvc := service.NewChatService(kv, log)
	bookingClient := service.NewBookingClient(cfg.Booking.BaseURL, cfg.Booking.Timeout, log)

	router := httpapi.NewRouter(log)
	router.RegisterHealth()
	router.RegisterEmployeeRoutes(httpapi.NewEmployeeHandler(employeeSvc, log), httpapi.NewImageHandler(resolver, log))
	router.RegisterContentRoutes(httpapi.NewContentHandler(newsSvc, taskSvc, knowledgeSvc, policySvc, log))
	router.RegisterHelpRoutes(httpapi.NewHelpHandler(helpSvc, log))
	router.RegisterOpsRoutes(httpapi.NewOpsHandler(workflowSvc, attendanceSvc, hierarchySvc, log))
	router.RegisterPersonalRoutes(httpapi.NewPersonalHandler(todoSvc, chatSvc, log))
	router.RegisterBookingRoutes(httpapi.NewBookingHandler(bookingClient, log))

	// dashboard carousels advance server-side so every client sees the
	// same frame
	runners := startCarousels(employeeSvc, log)
	router.RegisterRotationRoutes(httpapi.NewRotationHandler(runners, log))

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		cancel()
	case <-errCh:
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	for _, r := range runners {
		r.Stop()
	}
	_ = redisClient.Close()
	if db != nil {
		_ = db.Close()
	}
}

func openPostgres(c config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// startCarousels wires the banner, gallery and new-joinee rotations. The
// joinee strip shows a window of three and only rotates when there are
// more than three recent joinees.
func startCarousels(employees *service.EmployeeService, log *zap.Logger) []*rotation.Runner {
	const joineeWindow = 3

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	joineeCount := 0
	if joinees, err := employees.NewJoinees(ctx, 0); err == nil {
		joineeCount = len(joinees)
	}

	runners := []*rotation.Runner{
		rotation.NewRunner("banner", rotation.NewSequence(5, rotation.SimpleWrap), 3*time.Second, log),
		rotation.NewRunner("gallery", rotation.NewSequence(6, rotation.SimpleWrap), 2*time.Second, log),
		rotation.NewRunner("joinees", rotation.NewSequence(joineeCount, rotation.WindowedWrap(joineeWindow)), 5*time.Second, log),
	}
	for _, r := range runners {
		r.Start()
	}
	return runners
}
