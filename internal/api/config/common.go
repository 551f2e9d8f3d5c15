package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	OAuth    OAuthConfig    `mapstructure:"oauth"`
	Cron     CronConfig     `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port        int      `mapstructure:"port"`
	Env         string   `mapstructure:"env"`
	AuthRPS     float64  `mapstructure:"auth_rps"`
	AuthBurst   int      `mapstructure:"auth_burst"`
	TrustedCIDR []string `mapstructure:"trusted_proxies"`
}

// IsProduction reports whether cookies should be marked Secure.
func (s ServerConfig) IsProduction() bool {
	return s.Env == "production"
}

// DBConfig 数据库配置. Driver is "mysql" or "sqlite".
type DBConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
	Issuer      string `mapstructure:"issuer"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Enable           bool   `mapstructure:"enable"`
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MainBucket       string `mapstructure:"main_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
}

type KafkaConfig struct {
	Enable        bool           `mapstructure:"enable"`
	Brokers       []string       `mapstructure:"brokers"`
	Sasl          SaslConfig     `mapstructure:"sasl"`
	Consumer      ConsumerConfig `mapstructure:"consumer"`
	StatsConsumer TopicConsumer  `mapstructure:"stats_consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type TopicConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// OAuthConfig 各社交平台的 OAuth 应用配置，key 为平台名
type OAuthConfig struct {
	RedirectBase string                      `mapstructure:"redirect_base"`
	Providers    map[string]OAuthAppConfig `mapstructure:"providers"`
}

type OAuthAppConfig struct {
	ClientID     string   `mapstructure:"client_id"`
	ClientSecret string   `mapstructure:"client_secret"`
	AuthURL      string   `mapstructure:"auth_url"`
	TokenURL     string   `mapstructure:"token_url"`
	Scopes       []string `mapstructure:"scopes"`
}

type CronConfig struct {
	Enable           bool   `mapstructure:"enable"`
	StatsRollForward string `mapstructure:"stats_roll_forward"`
	ConnectionExpiry string `mapstructure:"connection_expiry"`
}
