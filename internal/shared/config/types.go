package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host" validate:"required"`
	Port           int      `mapstructure:"port" validate:"min=1,max=65535"`
	Mode           string   `mapstructure:"mode" validate:"oneof=debug release test"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"oneof=sqlite mysql"`
	Path            string `mapstructure:"path"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format" validate:"oneof=console json"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// ConnectivityConfig controls where the offline preference lives and how
// often the agent tries to drain its sync queue.
type ConnectivityConfig struct {
	PreferenceBackend   string `mapstructure:"preference_backend" validate:"oneof=database redis"`
	StorageKey          string `mapstructure:"storage_key" validate:"required"`
	SyncIntervalSeconds int    `mapstructure:"sync_interval_seconds" validate:"min=1"`
	ProbeTimeoutSeconds int    `mapstructure:"probe_timeout_seconds" validate:"min=1"`
	SyncBatchSize       int    `mapstructure:"sync_batch_size" validate:"min=1"`
}

func (c *ConnectivityConfig) SyncInterval() time.Duration {
	return time.Duration(c.SyncIntervalSeconds) * time.Second
}

func (c *ConnectivityConfig) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutSeconds) * time.Second
}

type BackendConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=1"`
}

func (b *BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

type FunctionsConfig struct {
	Host                string `mapstructure:"host"`
	Port                int    `mapstructure:"port"`
	ServiceRoleKey      string `mapstructure:"service_role_key"`
	LookupRatePerMinute int    `mapstructure:"lookup_rate_per_minute"`
}

func (f *FunctionsConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", f.Host, f.Port)
}

// BusinessConfig identifies the business this device belongs to. Timezone
// only affects calendar boundaries in list filters.
type BusinessConfig struct {
	ID       string `mapstructure:"id" validate:"required"`
	Timezone string `mapstructure:"timezone"`
}
