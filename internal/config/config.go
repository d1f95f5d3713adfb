package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Mpesa Mpesa `validate:"required"`

	Supabase Supabase `validate:"required"`

	Ledger Ledger `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis `validate:"required"`

	Cache Cache
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

// Mpesa holds the Daraja credentials. Either BearerToken or the
// consumer key pair must be set; Password overrides the derived signature.
type Mpesa struct {
	BaseURL          string        `validate:"required,url"`
	ShortCode        int64         `validate:"required,gt=0"`
	PartyB           int64         `validate:"gte=0"`
	Passkey          string        `validate:"required_without=Password"`
	Password         string        `validate:"required_without=Passkey"`
	BearerToken      string        `validate:"required_without_all=ConsumerKey ConsumerSecret"`
	ConsumerKey      string        `validate:"required_with=ConsumerSecret"`
	ConsumerSecret   string        `validate:"required_with=ConsumerKey"`
	TransactionType  string        `validate:"required,oneof=CustomerPayBillOnline CustomerBuyGoodsOnline"`
	CallbackURL      string        `validate:"required,url"`
	// CallbackToken is appended to CallbackURL and required on every callback.
	CallbackToken    string        `validate:"required,min=16"`
	AccountReference string        `validate:"required,max=12"`
	Description      string        `validate:"required,max=13"`
	Timeout          time.Duration `validate:"gte=0"`
}

type Supabase struct {
	URL           string `validate:"required,url"`
	ServiceKey    string `validate:"required"`
	JWTSecret     string `validate:"required"`
	AvatarsBucket string `validate:"required"`
}

type Ledger struct {
	RPCURL string `validate:"required,url"`
	// ContractABI is the JSON ABI of the investment contract.
	ContractABI string `validate:"required,json"`
}

type Kafka struct {
	GroupID       string   `validate:"required"`
	Brokers       []string `validate:"required,min=1,dive,hostname_port"`
	PaymentsTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`

	// RelayInterval is how often stored but unpublished payment results are retried.
	RelayInterval time.Duration `validate:"gt=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Redis struct {
	Addr           string        `validate:"required,hostname_port"`
	Password       string        `validate:"-"`
	DB             int           `validate:"gte=0"`
	IdempotencyTTL time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	shortCode := envInt64("MPESA_SHORT_CODE", 174379)

	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Mpesa: Mpesa{
			BaseURL:          env("MPESA_BASE_URL", "https://sandbox.safaricom.co.ke"),
			ShortCode:        shortCode,
			PartyB:           envInt64("MPESA_PARTY_B", shortCode),
			Passkey:          env("MPESA_PASSKEY", ""),
			Password:         env("MPESA_PASSWORD", ""),
			BearerToken:      env("MPESA_BEARER_TOKEN", ""),
			ConsumerKey:      env("MPESA_CONSUMER_KEY", ""),
			ConsumerSecret:   env("MPESA_CONSUMER_SECRET", ""),
			TransactionType:  env("MPESA_TRANSACTION_TYPE", "CustomerPayBillOnline"),
			CallbackURL:      env("MPESA_CALLBACK_URL", "http://localhost:8080/api/mpesa/callback"),
			CallbackToken:    env("MPESA_CALLBACK_TOKEN", ""),
			AccountReference: env("MPESA_ACCOUNT_REFERENCE", "ShilingiX"),
			Description:      env("MPESA_DESCRIPTION", "Wallet top up"),
			Timeout:          envDuration("MPESA_TIMEOUT", 30*time.Second),
		},

		Supabase: Supabase{
			URL:           env("SUPABASE_URL", ""),
			ServiceKey:    env("SUPABASE_SERVICE_KEY", ""),
			JWTSecret:     env("SUPABASE_JWT_SECRET", ""),
			AvatarsBucket: env("SUPABASE_AVATARS_BUCKET", "avatars"),
		},

		Ledger: Ledger{
			RPCURL:      env("LEDGER_RPC_URL", "https://testnet.hashio.io/api"),
			ContractABI: env("LEDGER_CONTRACT_ABI", ""),
		},

		Kafka: Kafka{
			GroupID:       env("KAFKA_GROUP_ID", "wallet-service"),
			PaymentsTopic: env("KAFKA_PAYMENTS_TOPIC", "payment-results"),
			Brokers:       strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),

			RelayInterval: envDuration("PAYMENT_RELAY_INTERVAL", 30*time.Second),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "postgres"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:           env("REDIS_ADDR", "localhost:6379"),
			Password:       env("REDIS_PASSWORD", ""),
			DB:             envInt("REDIS_DB", 0),
			IdempotencyTTL: envDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 100),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
