package cmd

import (
	"testing"
	"time"

	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/hamlet"
)

func TestEverySurfaceIsACommand(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	names := map[string]bool{}
	for _, command := range rootCmd.Commands() {
		names[command.Name()] = true
	}
	for _, expected := range []string{"ui", "exec", "shell", "serve", "export", "version"} {
		must_be.True(names[expected])
	}

	found, _, err := rootCmd.Find([]string{"tui"})
	must_be.Nil(err)
	must_be.Equal("ui", found.Name())
}

func TestFlagsAreDefined(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	for _, name := range []string{"config", "debug", "trace", "silent", "variant", "theme"} {
		wont_be.Nil(rootCmd.PersistentFlags().Lookup(name))
	}
	wont_be.Nil(uiCmd.Flags().Lookup("no-boot"))
	wont_be.Nil(uiCmd.Flags().Lookup("speed"))
	wont_be.Nil(serveCmd.Flags().Lookup("addr"))
	wont_be.Nil(serveCmd.Flags().Lookup("db"))

	wont_be.Nil(exportCmd.Args(exportCmd, []string{}))
	must_be.Nil(exportCmd.Args(exportCmd, []string{"public"}))
	wont_be.Nil(execCmd.Args(execCmd, []string{}))
}

func TestDefineVerbosity(t *testing.T) {
	tests := []struct {
		name                 string
		silent, debug, trace bool
		expected             common.Verbosity
	}{
		{"normal", false, false, false, common.Normal},
		{"silent", true, false, false, common.Silently},
		{"debug wins over silent", true, true, false, common.Debugging},
		{"trace wins", false, true, true, common.Tracing},
	}

	defer common.SetVerbosity(common.CurrentVerbosity())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			must_be, _ := hamlet.Specifications(t)
			defineVerbosity(tt.silent, tt.debug, tt.trace)
			must_be.Equal(tt.expected, common.CurrentVerbosity())
		})
	}
}

func TestSpeedFlagIsReadThroughTheFlagSet(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	flags := uiCmd.Flags()
	speed := flags.Lookup("speed")
	defer func() {
		speed.Value.Set(speed.DefValue)
		speed.Changed = false
	}()

	must_be.True(!speed.Changed)
	must_be.Nil(flags.Parse([]string{"--speed", "5ms"}))
	must_be.True(speed.Changed)
	value, err := flags.GetDuration("speed")
	must_be.Nil(err)
	must_be.Equal(5*time.Millisecond, value)
}
