package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/azuread"
	"go.uber.org/zap"

	"newschat/config"
	"newschat/models"
	"newschat/observability"
)

var ErrSQLServerNotConfigured = errors.New("SQL Server connection is not configured")

// Opener returns a database handle scoped to a single query. The caller
// closes it.
type Opener func() (*sql.DB, error)

// SQLServerService runs warehouse queries, one fresh connection per query.
type SQLServerService struct {
	open   Opener
	logger *zap.Logger
}

func NewSQLServerService(cfg config.SQLServerConfig, logger *zap.Logger) (*SQLServerService, error) {
	if !cfg.IsConfigured() {
		return nil, ErrSQLServerNotConfigured
	}

	connStr := buildConnectionString(cfg)
	newConnector := mssql.NewConnector
	if cfg.FedAuth != "" {
		newConnector = azuread.NewConnector
	}

	// The connector holds the parsed DSN and, for Azure AD, the credential and
	// its token cache. Each query still gets its own handle.
	connector, err := newConnector(connStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SQL Server connection settings: %w", err)
	}

	logger = logger.Named("sqlserver")
	logger.Info("SQL Server configured",
		zap.String("dsn", observability.SanitizeConnectionString(connStr)),
		zap.String("fedauth", cfg.FedAuth))

	open := func() (*sql.DB, error) {
		db := sql.OpenDB(connector)
		db.SetMaxOpenConns(1)
		return db, nil
	}
	return NewSQLServerServiceWithOpener(open, logger), nil
}

// NewSQLServerServiceWithOpener builds the service around a custom opener.
func NewSQLServerServiceWithOpener(open Opener, logger *zap.Logger) *SQLServerService {
	return &SQLServerService{open: open, logger: logger}
}

func buildConnectionString(cfg config.SQLServerConfig) string {
	query := url.Values{}
	query.Add("database", cfg.Database)
	query.Add("encrypt", strconv.FormatBool(cfg.Encrypt))
	if cfg.TrustServerCertificate {
		query.Add("TrustServerCertificate", "true")
	}

	if cfg.FedAuth != "" {
		query.Add("fedauth", cfg.FedAuth)
		if cfg.UserID != "" {
			query.Add("user id", cfg.UserID)
		}
		if cfg.Password != "" {
			query.Add("password", cfg.Password)
		}
		if cfg.TenantID != "" {
			query.Add("tenant id", cfg.TenantID)
		}
		return fmt.Sprintf("sqlserver://%s:%d?%s", cfg.Server, cfg.Port, query.Encode())
	}

	u := &url.URL{
		Scheme:   "sqlserver",
		Host:     fmt.Sprintf("%s:%d", cfg.Server, cfg.Port),
		RawQuery: query.Encode(),
	}
	if cfg.UserID != "" {
		u.User = url.UserPassword(cfg.UserID, cfg.Password)
	}
	return u.String()
}

// Execute runs query and materializes every row. Failures of any kind come
// back as an error result rather than a Go error.
func (s *SQLServerService) Execute(ctx context.Context, query string) models.QueryResult {
	start := time.Now()
	columns, data, err := s.run(ctx, query)
	elapsed := time.Since(start)

	if err != nil {
		observability.ObserveSQLExecution("error", elapsed)
		s.logger.Warn("SQL execution failed",
			zap.String("sql", query),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return models.QueryResult{
			Type:    models.TypeError,
			Message: fmt.Sprintf("SQL execution failed: %v", err),
			SQL:     query,
		}
	}

	observability.ObserveSQLExecution("ok", elapsed)
	s.logger.Debug("SQL executed",
		zap.Int("rows", len(data)),
		zap.Duration("elapsed", elapsed))
	return models.QueryResult{
		Type:    models.TypeSQLResult,
		Columns: columns,
		Data:    data,
		SQL:     query,
	}
}

func (s *SQLServerService) run(ctx context.Context, query string) ([]string, []map[string]any, error) {
	db, err := s.open()
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	data := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, nil, err
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return columns, data, nil
}

// normalizeValue makes driver values JSON friendly.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return val
	}
}

// Ping checks that the warehouse accepts connections.
func (s *SQLServerService) Ping(ctx context.Context) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()
	return db.PingContext(ctx)
}
