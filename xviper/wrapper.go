package xviper

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	sync.Mutex
	viper    *viper.Viper
	filename string
}

var (
	pool = fresh()
)

func fresh() *config {
	return &config{viper: viper.New()}
}

// Reset forgets every setting; mostly for tests.
func Reset() {
	pool.Lock()
	defer pool.Unlock()
	pool.viper = viper.New()
	pool.filename = ""
}

// Environment binds TERMFOLIO_* style variables; "server.db" becomes
// PREFIX_SERVER_DB.
func Environment(prefix string) {
	pool.Lock()
	defer pool.Unlock()
	pool.viper.SetEnvPrefix(prefix)
	pool.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	pool.viper.AutomaticEnv()
}

// Alias binds extra environment variable names to a key.
func Alias(key string, variables ...string) error {
	pool.Lock()
	defer pool.Unlock()
	return pool.viper.BindEnv(append([]string{key}, variables...)...)
}

// Load reads the first existing file of the candidates. Missing candidates
// are fine, a broken file is not.
func Load(candidates ...string) (string, error) {
	pool.Lock()
	defer pool.Unlock()
	for _, candidate := range candidates {
		if len(candidate) == 0 {
			continue
		}
		if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			continue
		}
		pool.viper.SetConfigFile(candidate)
		if err := pool.viper.ReadInConfig(); err != nil {
			return candidate, fmt.Errorf("reading settings %q: %w", candidate, err)
		}
		pool.filename = candidate
		return candidate, nil
	}
	return "", nil
}

func ConfigFileUsed() string {
	pool.Lock()
	defer pool.Unlock()
	return pool.filename
}

func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for %q", key)
	}
	pool.Lock()
	defer pool.Unlock()
	return pool.viper.BindPFlag(key, flag)
}

func SetDefault(key string, value interface{}) {
	pool.Lock()
	defer pool.Unlock()
	pool.viper.SetDefault(key, value)
}

func Set(key string, value interface{}) {
	pool.Lock()
	defer pool.Unlock()
	pool.viper.Set(key, value)
}

func IsSet(key string) bool {
	pool.Lock()
	defer pool.Unlock()
	return pool.viper.IsSet(key)
}

func Get(key string) interface{} {
	pool.Lock()
	defer pool.Unlock()
	return pool.viper.Get(key)
}

func GetString(key string) string {
	pool.Lock()
	defer pool.Unlock()
	return pool.viper.GetString(key)
}

func GetBool(key string) bool {
	pool.Lock()
	defer pool.Unlock()
	return pool.viper.GetBool(key)
}

func GetInt(key string) int {
	pool.Lock()
	defer pool.Unlock()
	return pool.viper.GetInt(key)
}

func GetDuration(key string) time.Duration {
	pool.Lock()
	defer pool.Unlock()
	return pool.viper.GetDuration(key)
}

// AllSettings is a snapshot of the effective configuration.
func AllSettings() map[string]interface{} {
	pool.Lock()
	defer pool.Unlock()
	return pool.viper.AllSettings()
}
