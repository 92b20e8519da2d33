package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"txnotify/internal/addresses"
	"txnotify/internal/assist"

	"github.com/joho/godotenv"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidValue   error = errors.New("invalid environment variable value")
)

const (
	apiPortEnvKey   = "API_PORT"
	ethNodeEnvKey   = "ETH_NODE_URL"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"

	networkIDEnvKey        = "NETWORK_ID"
	dappIDEnvKey           = "DAPP_ID"
	addressBookPathEnvKey  = "ADDRESS_BOOK_PATH"
	logLevelEnvKey         = "LOG_LEVEL"
	kafkaBrokerEnvKey      = "KAFKA_BROKER_ADDRESS"
	kafkaTopicEnvKey       = "KAFKA_TOPIC"
	pollIntervalEnvKey     = "TRACKER_POLL_INTERVAL"
	trackerTimeoutEnvKey   = "TRACKER_TIMEOUT"
	operatorUserEnvKey     = "OPERATOR_USERNAME"
	operatorPasswordEnvKey = "OPERATOR_PASSWORD"
)

const (
	defaultNetworkID    = "1"
	defaultLogLevel     = "info"
	defaultKafkaTopic   = "tx-notifications"
	defaultPollInterval = 5 * time.Second
	defaultTimeout      = 3 * time.Minute
	defaultOperator     = "operator"
)

// Format is the configuration needed to build status messages.
// NetworkID is kept as configured; only the exact value "4" selects the
// rinkeby tables.
type Format struct {
	NetworkID       string
	DappID          string
	AddressBookPath string
	LogLevel        string
}

func (f Format) Network() addresses.Network {
	return addresses.NetworkFromID(f.NetworkID)
}

// AddressBook loads the configured book, or the embedded one.
func (f Format) AddressBook() (addresses.Book, error) {
	if f.AddressBookPath == "" {
		return addresses.Default()
	}
	return addresses.LoadFile(f.AddressBookPath)
}

type Kafka struct {
	BrokerAddress string
	Topic         string
}

// Enabled is false when no broker is configured.
func (k Kafka) Enabled() bool {
	return k.BrokerAddress != ""
}

type Tracker struct {
	PollInterval time.Duration
	Timeout      time.Duration
}

type Operator struct {
	Username string
	Password string
}

type App struct {
	Format

	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	Kafka           Kafka
	Tracker         Tracker
	Operator        Operator
}

// NewFormat reads the optional keys only. A .env file in the working
// directory is loaded first when present.
func NewFormat() (Format, error) {
	_ = godotenv.Load()
	return newFormat(), nil
}

func NewApp() (App, error) {
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	pollInterval, err := durationEnv(pollIntervalEnvKey, defaultPollInterval)
	if err != nil {
		return App{}, err
	}

	timeout, err := durationEnv(trackerTimeoutEnvKey, defaultTimeout)
	if err != nil {
		return App{}, err
	}

	return App{
		Format:          newFormat(),
		Port:            port,
		NodeURL:         nodeURL,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		Kafka: Kafka{
			BrokerAddress: os.Getenv(kafkaBrokerEnvKey),
			Topic:         getEnv(kafkaTopicEnvKey, defaultKafkaTopic),
		},
		Tracker: Tracker{
			PollInterval: pollInterval,
			Timeout:      timeout,
		},
		Operator: Operator{
			Username: getEnv(operatorUserEnvKey, defaultOperator),
			Password: os.Getenv(operatorPasswordEnvKey),
		},
	}, nil
}

func newFormat() Format {
	return Format{
		NetworkID:       getEnv(networkIDEnvKey, defaultNetworkID),
		DappID:          getEnv(dappIDEnvKey, assist.DefaultDappID),
		AddressBookPath: os.Getenv(addressBookPathEnvKey),
		LogLevel:        getEnv(logLevelEnvKey, defaultLogLevel),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidValue, key, raw)
	}
	return d, nil
}
