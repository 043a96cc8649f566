package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultSQLitePath        = "data/gymledger.db"
	defaultBusyTimeout       = 5 * time.Second
	defaultTodoWindowDays    = 15
	defaultUpcomingAppts     = 3
	defaultLogLevel          = "info"
	defaultLogFormat         = "json"
	defaultDashboardTimezone = "UTC"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Logging   LoggingConfig   `yaml:"logging"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr" env:"GYMLEDGER_LISTEN_ADDR"`
}

// DatabaseConfig はストアへの接続設定です。driver が sqlite の場合は Path のみを使用します。
type DatabaseConfig struct {
	Driver             string        `yaml:"driver" env:"GYMLEDGER_DB_DRIVER"`
	Path               string        `yaml:"path" env:"GYMLEDGER_DB_PATH"`
	BusyTimeout        time.Duration `yaml:"-"`
	BusyTimeoutRaw     string        `yaml:"busy_timeout"`
	Host               string        `yaml:"host" env:"GYMLEDGER_DB_HOST"`
	Port               int           `yaml:"port" env:"GYMLEDGER_DB_PORT"`
	User               string        `yaml:"user" env:"GYMLEDGER_DB_USER"`
	Password           string        `yaml:"password" env:"GYMLEDGER_DB_PASSWORD"`
	Name               string        `yaml:"name" env:"GYMLEDGER_DB_NAME"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// LoggingConfig はログ出力の設定です。
type LoggingConfig struct {
	Level  string `yaml:"level" env:"GYMLEDGER_LOG_LEVEL"`
	Format string `yaml:"format" env:"GYMLEDGER_LOG_FORMAT"`
	File   string `yaml:"file" env:"GYMLEDGER_LOG_FILE"`
}

// DashboardConfig はダッシュボード集計の設定です。
type DashboardConfig struct {
	Timezone             string `yaml:"timezone" env:"GYMLEDGER_TIMEZONE"`
	TodoWindowDays       int    `yaml:"todo_window_days"`
	UpcomingAppointments int    `yaml:"upcoming_appointments"`

	location *time.Location
}

// Location は Timezone を解決したロケーションです。
func (d DashboardConfig) Location() *time.Location {
	if d.location == nil {
		return time.UTC
	}
	return d.location
}

// Load は指定されたパスから設定ファイルを読み込み、環境変数で上書きします。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.Database.validateAndNormalize(); err != nil {
		return err
	}

	if err := c.Logging.validateAndNormalize(); err != nil {
		return err
	}

	if err := c.Dashboard.validateAndNormalize(); err != nil {
		return err
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))
	if d.Driver == "" {
		d.Driver = DriverSQLite
	}

	switch d.Driver {
	case DriverSQLite:
		if strings.TrimSpace(d.Path) == "" {
			d.Path = defaultSQLitePath
		}
		timeout, err := parseDurationAllowEmpty(d.BusyTimeoutRaw)
		if err != nil {
			return fmt.Errorf("config: database.busy_timeout: %w", err)
		}
		if timeout == 0 {
			timeout = defaultBusyTimeout
		}
		d.BusyTimeout = timeout
		return nil
	case DriverPostgres:
		return d.validatePostgres()
	default:
		return fmt.Errorf("config: database.driver %q is not supported", d.Driver)
	}
}

func (d *DatabaseConfig) validatePostgres() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (l *LoggingConfig) validateAndNormalize() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	switch l.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: logging.level %q is not supported", l.Level)
	}

	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
	if l.Format != "json" && l.Format != "console" {
		return fmt.Errorf("config: logging.format %q is not supported", l.Format)
	}
	return nil
}

func (d *DashboardConfig) validateAndNormalize() error {
	if strings.TrimSpace(d.Timezone) == "" {
		d.Timezone = defaultDashboardTimezone
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return fmt.Errorf("config: dashboard.timezone: %w", err)
	}
	d.location = loc

	if d.TodoWindowDays < 0 {
		return fmt.Errorf("config: dashboard.todo_window_days must not be negative")
	}
	if d.TodoWindowDays == 0 {
		d.TodoWindowDays = defaultTodoWindowDays
	}
	if d.UpcomingAppointments < 0 {
		return fmt.Errorf("config: dashboard.upcoming_appointments must not be negative")
	}
	if d.UpcomingAppointments == 0 {
		d.UpcomingAppointments = defaultUpcomingAppts
	}
	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

// SQLiteDSN は modernc.org/sqlite 用の接続文字列を返します。
func (d DatabaseConfig) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", d.Path, d.BusyTimeout.Milliseconds())
}

// MigrationURL は golang-migrate 用のデータベース URL を返します。
func (d DatabaseConfig) MigrationURL() string {
	if d.Driver == DriverPostgres {
		return d.DSN()
	}
	return "sqlite://" + d.Path
}
