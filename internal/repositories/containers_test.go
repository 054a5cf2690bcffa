package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/migrations"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Apply(ctx, db))

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}

	return db, teardown
}

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	require.NoError(t, rdb.Ping(ctx).Err())

	teardown := func() {
		rdb.Close()
		container.Terminate(ctx)
	}

	return rdb, teardown
}

// seedUser inserts a user directly and returns it.
func seedUser(t *testing.T, db *sqlx.DB, email string) *models.UserDB {
	t.Helper()
	user, err := NewUserWriteRepository(db).Save(context.Background(), models.NewUser{
		Email:        email,
		PasswordHash: "hash",
		Username:     email[:1],
		DisplayName:  email[:1],
	})
	require.NoError(t, err)
	return user
}

// seedProduct lists a product for sellerID and returns it.
func seedProduct(t *testing.T, db *sqlx.DB, sellerID uuid.UUID, title string) *models.ProductDB {
	t.Helper()
	product, err := NewProductWriteRepository(db).Save(context.Background(), models.NewProduct{
		SellerID: sellerID,
		Title:    title,
		Price:    10,
		Quantity: 1,
		Status:   models.ProductStatusAvailable,
	})
	require.NoError(t, err)
	return product
}
