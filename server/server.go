// Package server exposes the command registry, the blog and the visitor
// statistics as a JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/master-bogdan/termfolio/blog"
	"github.com/master-bogdan/termfolio/commands"
	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/stats"
	"github.com/master-bogdan/termfolio/xviper"
)

const (
	shutdownGrace  = 5 * time.Second
	instanceHeader = "X-Termfolio-Instance"
)

type Options struct {
	Registry *commands.Registry
	Posts    *blog.Store
	// Stats is optional; without it nothing is recorded and /api/stats is 503.
	Stats    *stats.Store
	BasePath string
	Clock    func() time.Time
}

type Server struct {
	options Options
	engine  *gin.Engine
	hasher  *hasher
}

type execRequest struct {
	Line string `json:"line"`
}

type execResponse struct {
	Command   string       `json:"command"`
	Kind      string       `json:"kind"`
	Text      string       `json:"text"`
	Output    content.Node `json:"output"`
	Timestamp time.Time    `json:"timestamp"`
}

type commandEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type postEntry struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

type postResponse struct {
	blog.Post
	Body content.Node `json:"body"`
}

func New(options Options) *Server {
	if options.Clock == nil {
		options.Clock = time.Now
	}
	if options.Posts == nil {
		options.Posts = blog.Builtin()
	}
	it := &Server{
		options: options,
		hasher:  newHasher(),
	}
	it.engine = it.routes()
	return it
}

func (it *Server) Handler() http.Handler {
	return it.engine
}

func (it *Server) routes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	if gin.Mode() == gin.DebugMode {
		engine.Use(gin.Logger())
	}

	base := engine.Group(it.options.BasePath)
	base.GET("/healthz", it.healthz)

	api := base.Group("/api")
	api.Use(it.identify(), it.track())
	api.GET("/commands", it.listCommands)
	api.POST("/exec", it.exec)
	api.GET("/posts", it.listPosts)
	api.GET("/posts/:slug", it.showPost)
	api.GET("/stats", it.showStats)
	return engine
}

func (it *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": common.Version})
}

func (it *Server) listCommands(c *gin.Context) {
	result := []commandEntry{}
	for _, descriptor := range it.options.Registry.Descriptors(false) {
		result = append(result, commandEntry{Name: descriptor.Name, Description: descriptor.Description})
	}
	c.JSON(http.StatusOK, result)
}

func (it *Server) exec(c *gin.Context) {
	request := execRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected JSON body with a line"})
		return
	}
	result := it.options.Registry.Dispatch(request.Line, it.options.Clock())
	switch result.Kind {
	case commands.Blank:
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty command line"})
		return
	case commands.Clear:
		it.count(c, result.Name)
		c.JSON(http.StatusOK, execResponse{
			Command:   result.Name,
			Kind:      result.Kind.String(),
			Output:    content.Empty{},
			Timestamp: it.options.Clock(),
		})
		return
	}
	if result.Kind == commands.Executed {
		it.count(c, result.Name)
	}
	c.JSON(http.StatusOK, execResponse{
		Command:   result.Output.Command,
		Kind:      result.Kind.String(),
		Text:      content.RenderPlain(result.Output.Output),
		Output:    result.Output.Output,
		Timestamp: result.Output.Timestamp,
	})
}

func (it *Server) count(c *gin.Context, name string) {
	if it.options.Stats == nil || doNotTrack(c) || !xviper.CanTrack() {
		return
	}
	if err := it.options.Stats.RecordCommand(name); err != nil {
		common.Uncritical("stats", err)
	}
}

func (it *Server) listPosts(c *gin.Context) {
	result := []postEntry{}
	for _, post := range it.options.Posts.All() {
		result = append(result, postEntry{Slug: post.Slug, Title: post.Title, Date: post.Date})
	}
	c.JSON(http.StatusOK, result)
}

func (it *Server) showPost(c *gin.Context) {
	post, ok := it.options.Posts.Find(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found", "slug": c.Param("slug")})
		return
	}
	c.JSON(http.StatusOK, postResponse{Post: post, Body: post.Body()})
}

func (it *Server) showStats(c *gin.Context) {
	if it.options.Stats == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "statistics are disabled"})
		return
	}
	summary, err := it.options.Stats.Summary()
	if err != nil {
		common.Error("stats", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "statistics are unavailable"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Run serves on addr until the context is cancelled.
func (it *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           it.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	failed := make(chan error, 1)
	go func() {
		common.Log("Serving termfolio API on %s%s/api", addr, it.options.BasePath)
		failed <- server.ListenAndServe()
	}()

	select {
	case err := <-failed:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	common.Log("Shutting down API server.")
	stopping, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return server.Shutdown(stopping)
}

// identify tags every answer with the identity of this server instance.
func (it *Server) identify() gin.HandlerFunc {
	identity := xviper.InstanceIdentity()
	return func(c *gin.Context) {
		c.Header(instanceHeader, identity)
		c.Next()
	}
}
