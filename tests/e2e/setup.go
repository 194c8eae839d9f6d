//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"paintball-booking/cmd/bootstrap"
	"paintball-booking/cmd/bootstrap/components"
	"paintball-booking/internal/infra/db"
	"paintball-booking/internal/pkg/config"
	"paintball-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser       = "paintball"
	pgPassword   = "paintball"
	templateDB   = "paintball_template"
	migrationSQL = "migrations/001_initial_schema.sql"
)

// server is the PostgreSQL container shared by every suite of the process.
// Its template database already carries the schema, so suites clone it.
var server struct {
	once sync.Once
	err  error
	host string
	port nat.Port
}

func ensureServer(t *testing.T) {
	server.once.Do(func() {
		server.err = bootServer()
	})
	require.NoError(t, server.err, "postgres container")
}

func bootServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
				"TZ":                "UTC",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// durability is irrelevant for throwaway test data
			Cmd: []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "full_page_writes=off", "-c", "max_connections=200"},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return adminDSN(host, port)
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"app": "paintball-booking", "purpose": "e2e"},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("start container: %w", err)
	}
	if server.port, err = container.MappedPort(ctx, "5432/tcp"); err != nil {
		return err
	}
	if server.host, err = container.Host(ctx); err != nil {
		return err
	}
	return createTemplate(ctx)
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

func dbConfig(name string) config.DBConfig {
	return config.DBConfig{
		Host:     server.host,
		Port:     server.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

func createTemplate(ctx context.Context) error {
	admin, err := pgx.Connect(ctx, adminDSN(server.host, server.port))
	if err != nil {
		return err
	}
	defer admin.Close(ctx)
	if _, err := admin.Exec(ctx, "CREATE DATABASE "+templateDB); err != nil {
		return fmt.Errorf("create template: %w", err)
	}

	schema, err := readMigration()
	if err != nil {
		return err
	}
	pool, cleanup, err := db.Connect(ctx, dbConfig(templateDB))
	if err != nil {
		return err
	}
	defer cleanup()
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply %s: %w", migrationSQL, err)
	}
	return nil
}

// readMigration walks up from the package directory `go test` runs in.
func readMigration() (string, error) {
	path := migrationSQL
	for range 4 {
		if raw, err := os.ReadFile(path); err == nil {
			return string(raw), nil
		}
		path = filepath.Join("..", path)
	}
	return "", fmt.Errorf("%s not found above the working directory", migrationSQL)
}

// cloneDatabase gives a suite its own database, dropped when the suite ends.
func cloneDatabase(t *testing.T) config.DBConfig {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := "paintball_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	admin, err := pgx.Connect(ctx, adminDSN(server.host, server.port))
	require.NoError(t, err)
	defer admin.Close(ctx)

	// CREATE DATABASE ... TEMPLATE fails while another clone is in flight
	for attempt := 0; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name+" TEMPLATE "+templateDB)
		if err == nil || attempt == 5 {
			break
		}
		time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
	}
	require.NoError(t, err, "clone %s", templateDB)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		conn, err := pgx.Connect(ctx, adminDSN(server.host, server.port))
		if err != nil {
			return
		}
		defer conn.Close(ctx)
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database", "database", name, "error", err.Error())
		}
	})
	return dbConfig(name)
}

// startApp wires the production module graph against pool, minus the HTTP listener.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.ValidatorModule,
		components.PersistenceModule,
		components.RepositoryModule,
		bootstrap.CacheModule,
		bootstrap.JWTModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop application", "error", err.Error())
		}
	})
	return router
}

// SharedSuite gives each e2e suite a private database and a running router.
// Every subtest starts from the seeded reference data.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)
	ensureServer(t)

	s.Config = config.NewTestConfig()
	s.Config.DB = cloneDatabase(t)

	pool, cleanup, err := db.Connect(context.Background(), s.Config.DB)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	s.DB = pool

	require.NoError(t, dbtest.SeedReferenceData(pool))
	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
