package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Cookie        CookieConfig        `mapstructure:"cookie"`
	CORS          CORSConfig          `mapstructure:"cors"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Metrics       MetricsConfig       `mapstructure:"metrics"`
	Log           LogConfig           `mapstructure:"log"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name            string `mapstructure:"name"`
	Version         string `mapstructure:"version"`
	Mode            string `mapstructure:"mode"`
	Port            int    `mapstructure:"port"`
	MaxUploadMB     int64  `mapstructure:"max_upload_mb"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // 秒
}

// ShutdownDuration 返回优雅退出等待时间
func (a *AppConfig) ShutdownDuration() time.Duration {
	return time.Duration(a.ShutdownTimeout) * time.Second
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
}

// DSN 返回PostgreSQL连接字符串
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr 返回Redis地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// MinIOConfig 对象存储配置，所有媒体文件放在同一个 Bucket 下按目录区分
type MinIOConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Region        string `mapstructure:"region"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	Bucket        string `mapstructure:"bucket"`
	PresignExpiry int    `mapstructure:"presign_expiry"` // 秒
}

// PresignDuration 返回预签名 URL 有效期
func (m *MinIOConfig) PresignDuration() time.Duration {
	return time.Duration(m.PresignExpiry) * time.Second
}

// KafkaConfig Kafka配置
type KafkaConfig struct {
	Enabled bool              `mapstructure:"enabled"`
	Brokers []string          `mapstructure:"brokers"`
	Topics  map[string]string `mapstructure:"topics"`
	GroupID string            `mapstructure:"group_id"`
}

// Topic 按名称取 topic，未配置时使用名称本身
func (k *KafkaConfig) Topic(name string) string {
	if t, ok := k.Topics[name]; ok && t != "" {
		return t
	}
	return name
}

// ElasticsearchConfig Elasticsearch配置
type ElasticsearchConfig struct {
	Enabled bool              `mapstructure:"enabled"`
	Hosts   []string          `mapstructure:"hosts"`
	Index   map[string]string `mapstructure:"index"`
}

// VideosIndex 返回视频索引名
func (e *ElasticsearchConfig) VideosIndex() string {
	if name := e.Index["videos"]; name != "" {
		return name
	}
	return "videos"
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// ExpireDuration 返回过期时间
func (j *JWTConfig) ExpireDuration() time.Duration {
	return time.Duration(j.ExpireHours) * time.Hour
}

// CookieConfig 会话 Cookie 配置
type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Domain   string `mapstructure:"domain"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"` // none, lax, strict
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// RateLimitConfig 认证接口限流配置
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Max     int  `mapstructure:"max"`
	Window  int  `mapstructure:"window"` // 秒
}

// WindowDuration 返回限流窗口
func (r *RateLimitConfig) WindowDuration() time.Duration {
	return time.Duration(r.Window) * time.Second
}

// MetricsConfig Prometheus 指标配置
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "vidshare")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.port", 5001)
	v.SetDefault("app.max_upload_mb", 512)
	v.SetDefault("app.shutdown_timeout", 10)

	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 3600)

	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("minio.bucket", "vidshare")
	v.SetDefault("minio.presign_expiry", 3600)

	v.SetDefault("kafka.topics.video_events", "video-events")
	v.SetDefault("kafka.group_id", "vidshare-search-indexer")

	v.SetDefault("elasticsearch.index.videos", "videos")

	v.SetDefault("jwt.expire_hours", 24)

	v.SetDefault("cookie.name", "accessToken")
	v.SetDefault("cookie.secure", true)
	v.SetDefault("cookie.same_site", "none")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.max", 20)
	v.SetDefault("rate_limit.window", 60)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
}

// Load 加载配置文件，环境变量 VIDSHARE_<SECTION>_<KEY> 覆盖文件中的值
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("VIDSHARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if c.JWT.ExpireHours <= 0 {
		return fmt.Errorf("jwt.expire_hours must be positive")
	}
	if c.MinIO.PresignExpiry <= 0 {
		return fmt.Errorf("minio.presign_expiry must be positive")
	}
	return nil
}
