package cmd

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/pretty"
	"github.com/master-bogdan/termfolio/server"
	"github.com/master-bogdan/termfolio/settings"
	"github.com/master-bogdan/termfolio/stats"
)

const visitRetention = 365 * 24 * time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the terminal commands as a JSON API.",
	Long: `Serve the terminal commands, blog posts and visitor statistics as a
JSON API under the configured base path.

Routes:
  GET  /healthz
  GET  /api/commands
  POST /api/exec         {"line": "whoami"}
  GET  /api/posts
  GET  /api/posts/:slug
  GET  /api/stats

A .env file in the working directory is read before settings are applied.

Example:
  termfolio serve --addr :8080 --db ./stats.db`,
	PreRun: func(cmd *cobra.Command, args []string) {
		loadDotenv()
	},
	Run: func(cmd *cobra.Command, args []string) {
		bindFlag(settings.AddressKey, cmd, "addr")
		bindFlag(settings.DatabaseKey, cmd, "db")
		config := settings.Global
		space := summonWorkspace()

		if !common.DebugFlag() {
			gin.SetMode(gin.ReleaseMode)
		}

		store, err := stats.Open(config.Database())
		pretty.Guard(err == nil, 5, "Could not open statistics: %v", err)
		defer store.Close()
		if pruned, err := store.Prune(visitRetention); err != nil {
			pretty.Warning("Could not prune old visits: %v", err)
		} else if pruned > 0 {
			common.Log("Removed %d visits older than a year.", pruned)
		}

		api := server.New(server.Options{
			Registry: space.registry,
			Posts:    space.posts,
			Stats:    store,
			BasePath: config.BasePath(),
		})
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		pretty.Note("Serving %s on %s with statistics in %s.", config.BasePath()+"/api", config.Address(), store.Path())
		err = api.Run(ctx, config.Address())
		pretty.Guard(err == nil, 1, "Server failed: %v", err)
	},
}

// loadDotenv applies a .env file of the working directory, when there is
// one. Settings read the environment lazily, so TERMFOLIO_* variables from
// it still take effect.
func loadDotenv() {
	err := godotenv.Load()
	switch {
	case err == nil:
		common.Debug("Loaded environment from .env file.")
	case errors.Is(err, fs.ErrNotExist):
		common.Trace("No .env file to load.")
	default:
		common.Uncritical(".env", err)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
	serveCmd.Flags().String("db", "", "statistics database file (default $TERMFOLIO_HOME/stats.db)")
}
