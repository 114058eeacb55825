package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/tdex-network/tdex-pooling/internal/core/application"

	"github.com/spf13/viper"
)

const (
	// ListeningPortKey is the port where the REST interface will listen on
	ListeningPortKey = "LISTENING_PORT"
	// DatadirKey is the local data directory to store the internal state of daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"
	// CustodyTypeKey selects where pooled funds are held, either the in-process
	// custody or an external one
	CustodyTypeKey = "CUSTODY_TYPE"
	// CustodyAddrKey is the base URL of the external custody service
	CustodyAddrKey = "CUSTODY_ADDR"
	// CustodyRequestsPerSecondKey caps the rate of requests to the external custody
	CustodyRequestsPerSecondKey = "CUSTODY_REQUESTS_PER_SECOND"
	// CustodyTimeoutKey is the timeout of every request to the external custody
	CustodyTimeoutKey = "CUSTODY_TIMEOUT"
	// AuthSecretKey is the secret used to sign and verify bearer tokens
	AuthSecretKey = "AUTH_SECRET"
	// NoAuthKey is used to start the daemon without token authentication. The
	// caller identity is taken from a request header, never use in production
	NoAuthKey = "NO_AUTH"
	// CORSAllowedOriginsKey is the comma separated list of origins browsers can
	// call the REST interface from
	CORSAllowedOriginsKey = "CORS_ALLOWED_ORIGINS"
	// WebhookTimeoutKey is the timeout of every webhook notification
	WebhookTimeoutKey = "WEBHOOK_TIMEOUT"

	DbLocation = "db"

	CustodyInMemory = "inmemory"
	CustodyRemote   = "remote"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("pooling-daemon", false)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("POOLING")
	vip.AutomaticEnv()

	vip.SetDefault(ListeningPortKey, 9090)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(DBTypeKey, application.DBBadger)
	vip.SetDefault(CustodyTypeKey, CustodyInMemory)
	vip.SetDefault(CustodyRequestsPerSecondKey, 50)
	vip.SetDefault(CustodyTimeoutKey, 15*time.Second)
	vip.SetDefault(NoAuthKey, false)
	vip.SetDefault(CORSAllowedOriginsKey, []string{"*"})
	vip.SetDefault(WebhookTimeoutKey, 15*time.Second)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetStringSlice accepts both comma and space separated lists.
func GetStringSlice(key string) []string {
	list := make([]string, 0)
	for _, v := range vip.GetStringSlice(key) {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				list = append(list, s)
			}
		}
	}
	return list
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	port := GetInt(ListeningPortKey)
	if port <= 0 || port > 65535 {
		return fmt.Errorf("%s must be a valid port number", ListeningPortKey)
	}

	if _, ok := application.SupportedDBType[GetString(DBTypeKey)]; !ok {
		return fmt.Errorf(
			"%s must be either %s or %s",
			DBTypeKey, application.DBBadger, application.DBInMemory,
		)
	}

	switch GetString(CustodyTypeKey) {
	case CustodyInMemory:
	case CustodyRemote:
		addr := GetString(CustodyAddrKey)
		if addr == "" {
			return fmt.Errorf("missing custody address")
		}
		if _, err := url.ParseRequestURI(addr); err != nil {
			return fmt.Errorf("invalid custody address: %s", err)
		}
		if GetInt(CustodyRequestsPerSecondKey) <= 0 {
			return fmt.Errorf(
				"%s must be greater than 0", CustodyRequestsPerSecondKey,
			)
		}
	default:
		return fmt.Errorf(
			"%s must be either %s or %s",
			CustodyTypeKey, CustodyInMemory, CustodyRemote,
		)
	}

	if !GetBool(NoAuthKey) && len(GetString(AuthSecretKey)) <= 0 {
		return fmt.Errorf("missing auth secret")
	}

	return nil
}

func initDatadir() error {
	if GetString(DBTypeKey) != application.DBBadger {
		return nil
	}
	datadir := GetDatadir()
	return makeDirectoryIfNotExists(filepath.Join(datadir, DbLocation))
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
