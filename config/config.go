package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// 服务配置
	ServerPort  string `env:"SERVER_PORT" envDefault:"8888"`
	ServerHost  string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"areej-shop"`

	// PostgreSQL 配置
	PostgreSQLHost     string `env:"POSTGRESQL_HOST" envDefault:"localhost"`
	PostgreSQLPort     string `env:"POSTGRESQL_PORT" envDefault:"5432"`
	PostgreSQLUser     string `env:"POSTGRESQL_USER" envDefault:"postgres"`
	PostgreSQLPassword string `env:"POSTGRESQL_PASSWORD" envDefault:"postgres"`
	PostgreSQLDatabase string `env:"POSTGRESQL_DATABASE" envDefault:"areejshop"`
	PostgreSQLSchema   string `env:"POSTGRESQL_SCHEMA" envDefault:"public"`
	PostgreSQLSSLMode  string `env:"POSTGRESQL_SSLMODE" envDefault:"disable"`
	PostgreSQLMaxIdle  int    `env:"POSTGRESQL_MAX_IDLE" envDefault:"30"`
	PostgreSQLMaxOpen  int    `env:"POSTGRESQL_MAX_OPEN" envDefault:"200"`

	// Redis 配置
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"areej"`

	// RabbitMQ 配置
	RabbitMQAddr     string `env:"RABBITMQ_ADDR" envDefault:"localhost"`
	RabbitMQPort     string `env:"RABBITMQ_PORT" envDefault:"5672"`
	RabbitMQUsername string `env:"RABBITMQ_USERNAME" envDefault:"guest"`
	RabbitMQPassword string `env:"RABBITMQ_PASSWORD" envDefault:"guest"`
	RabbitMQVhost    string `env:"RABBITMQ_VHOST" envDefault:"/"`

	// JWT 配置
	JWTSecret        string `env:"JWT_SECRET"`                            // 必填，用于签名 JWT
	JWTExpireMinutes int    `env:"JWT_EXPIRE_MINUTES" envDefault:"10080"` // 7 天，与后台 cookie 有效期一致
	JWTRefreshDays   int    `env:"JWT_REFRESH_DAYS" envDefault:"14"`

	// 考勤二维码配置
	// QR_SECRET 必填：缺失时拒绝启动，不回退到任何默认值
	QRSecret string `env:"QR_SECRET"`

	// 后台会话配置（CSRF 防护）
	SessionSecret string `env:"SESSION_SECRET"`
	CSRFSecret    string `env:"CSRF_SECRET"`

	// 跨域来源白名单（逗号分隔）。留空表示回显任意来源，生产环境应配置店面和后台域名
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// 短信通知配置（新订单、考勤日报通知店主）
	SMSProvider          string `env:"SMS_PROVIDER" envDefault:"mock"` // aliyun, mock
	SMSSignName          string `env:"SMS_SIGN_NAME"`
	SMSOrderTemplate     string `env:"SMS_ORDER_TEMPLATE"`
	SMSSummaryTemplate   string `env:"SMS_SUMMARY_TEMPLATE"`
	SMSNotifyEnabled     bool   `env:"SMS_NOTIFY_ENABLED" envDefault:"false"`
	AliCloudAccessKeyID  string `env:"ALIBABA_CLOUD_ACCESS_KEY_ID"`
	AliCloudAccessSecret string `env:"ALIBABA_CLOUD_ACCESS_KEY_SECRET"`

	// 上传配置
	UploadDir       string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadMaxBytes  int64  `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"` // 5 MiB
	UploadWebPQual  int    `env:"UPLOAD_WEBP_QUALITY" envDefault:"85"`
	UploadPublicURL string `env:"UPLOAD_PUBLIC_URL" envDefault:"/uploads"`

	// Snowflake ID 生成器配置
	SnowflakeMachineID  int64 `env:"SNOWFLAKE_MACHINE_ID" envDefault:"1"`
	SnowflakeDataCenter int64 `env:"SNOWFLAKE_DATACENTER_ID" envDefault:"1"`

	// 日志配置
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`

	// OpenTelemetry 配置
	TracingEnabled  bool    `env:"TRACING_ENABLED" envDefault:"false"`
	TracingEndpoint string  `env:"TRACING_ENDPOINT" envDefault:"localhost:4317"`
	TracingSampler  float64 `env:"TRACING_SAMPLER" envDefault:"0.1"`

	// 速率限制配置, 配置在中间件内
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPS     int  `env:"RATE_LIMIT_RPS" envDefault:"100"`

	// 种子数据配置
	SeedAdminEmail    string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@areej.com"`
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:"admin123"`
}

// Init 解析环境变量并做快速失败校验。
// 三个入口（server/worker/scheduler）在其它任何 Init 之前调用；
// 测试二进制不调用，直接填充 Cfg
func Init() {

	if err := godotenv.Load(); err != nil {

		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	validateConfig()
}

func validateConfig() {
	if Cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	if Cfg.QRSecret == "" {
		log.Fatal("QR_SECRET is required (attendance codes are signed with it)")
	}

	if Cfg.SessionSecret == "" {
		log.Printf("WARN: SESSION_SECRET is not set, falling back to JWT_SECRET for the CSRF session store")
		Cfg.SessionSecret = Cfg.JWTSecret
	}
	if Cfg.CSRFSecret == "" {
		Cfg.CSRFSecret = Cfg.SessionSecret
	}

	if Cfg.SMSNotifyEnabled && Cfg.SMSSignName == "" {
		log.Printf("WARN: SMS_SIGN_NAME is not set, SMS notifications may not work properly")
	}
}

func (c *Config) GetDSN() string {
	return "host=" + c.PostgreSQLHost +
		" port=" + c.PostgreSQLPort +
		" user=" + c.PostgreSQLUser +
		" password=" + c.PostgreSQLPassword +
		" dbname=" + c.PostgreSQLDatabase +
		" sslmode=" + c.PostgreSQLSSLMode +
		" search_path=" + c.PostgreSQLSchema
}

func (c *Config) GetRabbitMQURL() string {
	return "amqp://" + c.RabbitMQUsername + ":" + c.RabbitMQPassword + "@" + c.RabbitMQAddr + ":" + c.RabbitMQPort + c.RabbitMQVhost
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
