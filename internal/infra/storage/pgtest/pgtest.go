//go:build integration

// Package pgtest поднимает PostgreSQL в контейнере для тестов хранилища.
// Контейнер запускается один раз на пакет, каждому тесту выдаётся отдельная база с применённой миграцией.
package pgtest

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/m04kA/Fairway-BookingService/internal/config"
)

const (
	image    = "postgres:16-alpine"
	user     = "booking"
	password = "booking"

	migrationFile = "migrations/001_init.sql"
	downMarker    = "-- +migrate Down"
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

// Open возвращает подключение к новой пустой базе со схемой сервиса
// В режиме -short тест пропускается
func Open(t *testing.T) *sql.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("postgres container tests are skipped in short mode")
	}

	containerOnce.Do(func() {
		container, containerErr = start()
	})
	require.NoError(t, containerErr, "failed to start postgres container")

	base := dbConfig(t)

	admin, err := sql.Open("postgres", base.DSN())
	require.NoError(t, err)

	name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = admin.Exec("CREATE DATABASE " + name)
	require.NoError(t, err)

	base.DBName = name
	db, err := sql.Open("postgres", base.DSN())
	require.NoError(t, err)
	db.SetMaxOpenConns(32)

	t.Cleanup(func() {
		_ = db.Close()
		_, _ = admin.Exec("DROP DATABASE IF EXISTS " + name + " WITH (FORCE)")
		_ = admin.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	_, err = db.ExecContext(ctx, readMigration(t))
	require.NoError(t, err, "failed to apply %s", migrationFile)

	return db
}

// start запускает контейнер; остановку выполняет reaper testcontainers после завершения процесса
func start() (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": password,
			"POSTGRES_DB":       "postgres",
		},
		Cmd: []string{"postgres", "-c", "fsync=off", "-c", "max_connections=200"},
		// первое сообщение пишет временный сервер init-скрипта
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(90 * time.Second),
	}

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func dbConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()

	ctx := context.Background()
	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	port, err := strconv.Atoi(mapped.Port())
	require.NoError(t, err)

	return config.DatabaseConfig{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		DBName:   "postgres",
		SSLMode:  "disable",
	}
}

// readMigration возвращает Up-часть файла миграции
func readMigration(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	root := filepath.Join(filepath.Dir(file), "..", "..", "..", "..")

	content, err := os.ReadFile(filepath.Join(root, migrationFile))
	require.NoError(t, err, "failed to read %s", migrationFile)

	up, _, _ := strings.Cut(string(content), downMarker)
	return up
}
