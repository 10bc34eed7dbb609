package common

import (
	"os"
	"path/filepath"
)

const (
	TERMFOLIO_HOME_VARIABLE = `TERMFOLIO_HOME`
	TERMFOLIO_PRODUCT_NAME  = `TERMFOLIO_PRODUCT_NAME`
	TERMFOLIO_NAME          = `termfolio`
	settingsFileName        = `termfolio.yaml`
	statsFileName           = `stats.db`
)

type (
	ProductStrategy interface {
		Name() string
		ForceHome(string)
		HomeVariable() string
		Home() string
		SettingsFile() string
		StatsDatabase() string
	}

	termfolioStrategy struct {
		forcedHome string
	}
)

func TermfolioMode() ProductStrategy {
	return &termfolioStrategy{}
}

func (it *termfolioStrategy) Name() string {
	if value := os.Getenv(TERMFOLIO_PRODUCT_NAME); len(value) > 0 {
		return value
	}
	return TERMFOLIO_NAME
}

func (it *termfolioStrategy) ForceHome(value string) {
	it.forcedHome = value
}

func (it *termfolioStrategy) HomeVariable() string {
	return TERMFOLIO_HOME_VARIABLE
}

func (it *termfolioStrategy) Home() string {
	if len(it.forcedHome) > 0 {
		return ExpandPath(it.forcedHome)
	}
	home := os.Getenv(TERMFOLIO_HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

func (it *termfolioStrategy) SettingsFile() string {
	return filepath.Join(it.Home(), settingsFileName)
}

func (it *termfolioStrategy) StatsDatabase() string {
	return filepath.Join(it.Home(), statsFileName)
}
