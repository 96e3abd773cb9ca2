package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/peaceoutommy/DMA-API/internal/config"
)

const driverName = "mysql"

// Credentials holds the connection secrets read from the environment.
type Credentials struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN builds a go-sql-driver DSN. multiStatements is only enabled for migrations.
func (c Credentials) DSN(multiStatements bool) string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, c.Port)
	mc.DBName = c.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.MultiStatements = multiStatements
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// Connect opens a MySQL pool configured from opts and verifies it with a ping.
func Connect(ctx context.Context, opts *config.DBOptions, creds Credentials) (*sql.DB, error) {
	slog.Info("Connecting to the database...")

	conn, err := sql.Open(driverName, creds.DSN(false))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(opts.MaxOpenConns)
	conn.SetMaxIdleConns(opts.MaxIdleConns)
	conn.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	conn.SetConnMaxLifetime(opts.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, opts.PingTimeout)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Connected to the database.", "db", creds.Name)

	return conn, nil
}
