package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// EnvPrefix префикс переменных окружения, переопределяющих значения из файла
// Например: BOOKING_DATABASE_PASSWORD, BOOKING_PAYMENT_SECRETKEY
const EnvPrefix = "BOOKING"

var (
	// ErrInvalidConfig возвращается при недопустимых значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Venue      VenueConfig      `toml:"venue"`
	Booking    BookingConfig    `toml:"booking"`
	Payment    PaymentConfig    `toml:"payment"`
	Automation AutomationConfig `toml:"automation"`
	Broker     BrokerConfig     `toml:"broker"`
	Redis      RedisConfig      `toml:"redis"`
	Admin      AdminConfig      `toml:"admin"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DayHours часы работы в конкретный день недели
type DayHours struct {
	Open   types.TimeString `toml:"open"`
	Close  types.TimeString `toml:"close"`
	Closed bool             `toml:"closed"`
}

// WeekHours расписание работы по дням недели
type WeekHours struct {
	Monday    DayHours `toml:"monday"`
	Tuesday   DayHours `toml:"tuesday"`
	Wednesday DayHours `toml:"wednesday"`
	Thursday  DayHours `toml:"thursday"`
	Friday    DayHours `toml:"friday"`
	Saturday  DayHours `toml:"saturday"`
	Sunday    DayHours `toml:"sunday"`
}

// For возвращает расписание на день недели
func (w *WeekHours) For(day time.Weekday) *DayHours {
	switch day {
	case time.Monday:
		return &w.Monday
	case time.Tuesday:
		return &w.Tuesday
	case time.Wednesday:
		return &w.Wednesday
	case time.Thursday:
		return &w.Thursday
	case time.Friday:
		return &w.Friday
	case time.Saturday:
		return &w.Saturday
	default:
		return &w.Sunday
	}
}

// VenueConfig параметры площадки
type VenueConfig struct {
	Name                   string    `toml:"name"`
	Bays                   int       `toml:"bays"`
	UTCOffsetMinutes       int       `toml:"utc_offset_minutes"`
	SlotGranularityMinutes int       `toml:"slot_granularity_minutes"`
	Hours                  WeekHours `toml:"hours"`
}

// Location фиксированная временная зона площадки
// Не зависит от часового пояса сервера или клиента
func (v VenueConfig) Location() *time.Location {
	return time.FixedZone(v.Name, v.UTCOffsetMinutes*60)
}

// Schedule часы работы по дням недели в виде доменной модели
func (v VenueConfig) Schedule() domain.WeeklySchedule {
	schedule := make(domain.WeeklySchedule, len(weekdays))
	for _, day := range weekdays {
		h := v.Hours.For(day)
		schedule[day] = domain.OperatingHours{Open: h.Open, Close: h.Close, Closed: h.Closed}
	}
	return schedule
}

// BookingConfig параметры допуска бронирований
type BookingConfig struct {
	GhostTimeout time.Duration `toml:"ghost_timeout"`
}

// PaymentConfig параметры платёжного шлюза (Yoco)
type PaymentConfig struct {
	GatewayURL      string `toml:"gateway_url"`
	SecretKey       string `toml:"secret_key"`
	WebhookSecret   string `toml:"webhook_secret"`
	Currency        string `toml:"currency"`
	SiteURL         string `toml:"site_url"`
	DepositPercent  int    `toml:"deposit_percent"`
	AdminBypassCode string `toml:"admin_bypass_code"`
	Timeout         int    `toml:"timeout"` // секунды
}

// AutomationConfig параметры webhook системы автоматизации (n8n)
type AutomationConfig struct {
	WebhookURL string `toml:"webhook_url"`
	Secret     string `toml:"secret"`
	Timeout    int    `toml:"timeout"` // секунды
}

// BrokerConfig параметры публикации событий в RabbitMQ
type BrokerConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Queue   string `toml:"queue"`
}

// RedisConfig параметры кэша занятых слотов
type RedisConfig struct {
	Enabled  bool          `toml:"enabled"`
	Addr     string        `toml:"addr"`
	Password string        `toml:"password"`
	DB       int           `toml:"db"`
	SlotsTTL time.Duration `toml:"slots_ttl"`
}

// AdminConfig доступ к административным маршрутам
type AdminConfig struct {
	Token string `toml:"token"`
}

// Load загружает конфигурацию из TOML файла и переопределяет значения из окружения
func Load(path string) (*Config, error) {
	var cfg Config

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	// 0 - валидное смещение (UTC), поэтому умолчание только для отсутствующего ключа
	if !md.IsDefined("venue", "utc_offset_minutes") {
		cfg.Venue.UTCOffsetMinutes = domain.DefaultUTCOffsetMinutes
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to apply env overrides: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 20
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "fairway_booking_service"
	}

	if c.Venue.Name == "" {
		c.Venue.Name = "SAST"
	}
	if c.Venue.Bays == 0 {
		c.Venue.Bays = domain.DefaultBayCount
	}
	if c.Venue.SlotGranularityMinutes == 0 {
		c.Venue.SlotGranularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	for _, day := range weekdays {
		h := c.Venue.Hours.For(day)
		if h.Open.IsZero() {
			h.Open = "09:00"
		}
		if h.Close.IsZero() {
			h.Close = "20:00"
		}
	}

	if c.Booking.GhostTimeout == 0 {
		c.Booking.GhostTimeout = domain.DefaultGhostTimeout
	}

	if c.Payment.GatewayURL == "" {
		c.Payment.GatewayURL = "https://payments.yoco.com/api"
	}
	if c.Payment.Currency == "" {
		c.Payment.Currency = "ZAR"
	}
	if c.Payment.DepositPercent == 0 {
		c.Payment.DepositPercent = domain.DefaultDepositPercent
	}
	if c.Payment.Timeout == 0 {
		c.Payment.Timeout = 15
	}

	if c.Automation.Timeout == 0 {
		c.Automation.Timeout = 10
	}
	if c.Broker.Queue == "" {
		c.Broker.Queue = "booking.confirmed"
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.SlotsTTL == 0 {
		c.Redis.SlotsTTL = 15 * time.Second
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Venue.Bays < 1 {
		return fmt.Errorf("%w: venue.bays must be positive", ErrInvalidConfig)
	}
	if c.Venue.SlotGranularityMinutes < 5 || c.Venue.SlotGranularityMinutes > 240 {
		return fmt.Errorf("%w: venue.slot_granularity_minutes must be within 5..240", ErrInvalidConfig)
	}
	if c.Venue.UTCOffsetMinutes < -14*60 || c.Venue.UTCOffsetMinutes > 14*60 {
		return fmt.Errorf("%w: venue.utc_offset_minutes out of range", ErrInvalidConfig)
	}
	if c.Booking.GhostTimeout <= 0 {
		return fmt.Errorf("%w: booking.ghost_timeout must be positive", ErrInvalidConfig)
	}
	if c.Payment.DepositPercent < 0 || c.Payment.DepositPercent > 100 {
		return fmt.Errorf("%w: payment.deposit_percent must be within 0..100", ErrInvalidConfig)
	}
	if c.Broker.Enabled && c.Broker.URL == "" {
		return fmt.Errorf("%w: broker.url is required when broker is enabled", ErrInvalidConfig)
	}

	for _, day := range weekdays {
		h := c.Venue.Hours.For(day)
		if h.Closed {
			continue
		}
		if err := h.Open.Validate(); err != nil {
			return fmt.Errorf("%w: venue.hours.%s.open: %v", ErrInvalidConfig, day, err)
		}
		if err := h.Close.Validate(); err != nil {
			return fmt.Errorf("%w: venue.hours.%s.close: %v", ErrInvalidConfig, day, err)
		}
		if !h.Open.IsBefore(h.Close) {
			return fmt.Errorf("%w: venue.hours.%s: open must be before close", ErrInvalidConfig, day)
		}
	}

	return nil
}
