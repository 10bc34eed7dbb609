package settings

import (
	"strings"
	"time"

	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/xviper"
)

const (
	VariantKey     = `variant`
	ThemeKey       = `theme`
	SpeedKey       = `speed`
	BootSpeedKey   = `boot.speed`
	BootPauseKey   = `boot.pause`
	BootEnabledKey = `boot.enabled`
	SiteKey        = `content.site`
	PostsKey       = `content.posts`
	AddressKey     = `server.addr`
	BasePathKey    = `server.base_path`
	AssetPrefixKey = `server.asset_prefix`
	DatabaseKey    = `server.db`

	environmentPrefix = `TERMFOLIO`
	localSettings     = `termfolio.yaml`
)

var (
	Global *Settings

	// ConfigFile is an explicit settings file, normally from --config.
	ConfigFile string
)

type Settings struct {
	source string
}

func defaults() {
	xviper.SetDefault(VariantKey, "classic")
	xviper.SetDefault(ThemeKey, "")
	xviper.SetDefault(SpeedKey, 15*time.Millisecond)
	xviper.SetDefault(BootSpeedKey, 20*time.Millisecond)
	xviper.SetDefault(BootPauseKey, time.Duration(0))
	xviper.SetDefault(BootEnabledKey, true)
	xviper.SetDefault(SiteKey, "")
	xviper.SetDefault(PostsKey, "")
	xviper.SetDefault(AddressKey, ":8080")
	xviper.SetDefault(BasePathKey, "")
	xviper.SetDefault(AssetPrefixKey, "")
	xviper.SetDefault(DatabaseKey, "")
}

// SummonSettings layers defaults, the settings file and TERMFOLIO_*
// environment variables; flags are bound on top by the commands.
func SummonSettings() (*Settings, error) {
	defaults()
	xviper.Environment(environmentPrefix)
	err := xviper.Alias(BasePathKey, "TERMFOLIO_SERVER_BASE_PATH", "TERMFOLIO_BASE_PATH")
	if err != nil {
		return nil, err
	}
	err = xviper.Alias(AssetPrefixKey, "TERMFOLIO_SERVER_ASSET_PREFIX", "TERMFOLIO_ASSET_PREFIX")
	if err != nil {
		return nil, err
	}
	candidates := []string{common.Product.SettingsFile(), localSettings}
	if len(ConfigFile) > 0 {
		candidates = []string{ConfigFile}
	}
	source, err := xviper.Load(candidates...)
	if err != nil {
		return nil, err
	}
	if len(source) > 0 {
		common.Debug("Settings loaded from %q.", source)
	}
	Global = &Settings{source: source}
	return Global, nil
}

func (it *Settings) Source() string {
	return it.source
}

func (it *Settings) Variant() string {
	return strings.ToLower(strings.TrimSpace(xviper.GetString(VariantKey)))
}

// Theme is empty when the variant's own theme should be used.
func (it *Settings) Theme() string {
	return strings.ToLower(strings.TrimSpace(xviper.GetString(ThemeKey)))
}

func (it *Settings) Speed() time.Duration {
	return positive(xviper.GetDuration(SpeedKey), 15*time.Millisecond)
}

func (it *Settings) BootSpeed() time.Duration {
	return positive(xviper.GetDuration(BootSpeedKey), 20*time.Millisecond)
}

func (it *Settings) BootPause() time.Duration {
	pause := xviper.GetDuration(BootPauseKey)
	if pause < 0 {
		return 0
	}
	return pause
}

func (it *Settings) BootEnabled() bool {
	return xviper.GetBool(BootEnabledKey)
}

func (it *Settings) SiteFile() string {
	return expanded(xviper.GetString(SiteKey))
}

func (it *Settings) PostsFolder() string {
	return expanded(xviper.GetString(PostsKey))
}

func (it *Settings) Address() string {
	return xviper.GetString(AddressKey)
}

// BasePath is "" for the root or "/name" without a trailing slash.
func (it *Settings) BasePath() string {
	return NormalizeBasePath(xviper.GetString(BasePathKey))
}

// AssetPrefix defaults to the base path followed by a slash.
func (it *Settings) AssetPrefix() string {
	prefix := strings.TrimSpace(xviper.GetString(AssetPrefixKey))
	if len(prefix) > 0 {
		return prefix
	}
	return it.BasePath() + "/"
}

func (it *Settings) Database() string {
	database := expanded(xviper.GetString(DatabaseKey))
	if len(database) > 0 {
		return database
	}
	return common.Product.StatsDatabase()
}

func NormalizeBasePath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if len(path) == 0 {
		return ""
	}
	return "/" + path
}

func positive(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}

func expanded(path string) string {
	path = strings.TrimSpace(path)
	if len(path) == 0 {
		return ""
	}
	return common.ExpandPath(path)
}
