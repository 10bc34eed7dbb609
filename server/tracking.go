package server

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/dchest/siphash"
	"github.com/gin-gonic/gin"

	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/stats"
	"github.com/master-bogdan/termfolio/xviper"
)

// hasher turns client addresses into tokens that are stable for the life of
// the process only.
type hasher struct {
	k0, k1 uint64
}

func newHasher() *hasher {
	key := make([]byte, 16)
	if _, err := rand.Read(key); err != nil {
		panic(fmt.Sprintf("no randomness for visitor hashing: %v", err))
	}
	return &hasher{
		k0: binary.LittleEndian.Uint64(key[:8]),
		k1: binary.LittleEndian.Uint64(key[8:]),
	}
}

func (it *hasher) Sum(address string) string {
	return fmt.Sprintf("%016x", siphash.Hash(it.k0, it.k1, []byte(address)))
}

func doNotTrack(c *gin.Context) bool {
	return c.GetHeader("DNT") == "1"
}

// track records one visit per API request unless the visitor asked not to be
// tracked or tracking is switched off.
func (it *Server) track() gin.HandlerFunc {
	return func(c *gin.Context) {
		if it.options.Stats == nil || doNotTrack(c) || !xviper.CanTrack() {
			c.Next()
			return
		}
		visit := stats.Visit{
			HashedIP:  it.hasher.Sum(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
			Timestamp: it.options.Clock(),
		}
		if err := it.options.Stats.RecordVisit(visit); err != nil {
			common.Uncritical("visit", err)
		}
		c.Next()
	}
}
