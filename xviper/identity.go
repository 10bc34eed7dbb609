package xviper

import (
	"crypto/sha256"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	instanceIdentityKey = `tracking.identity`
	trackingEnabledKey  = `tracking.enabled`
)

var (
	guidSteps = []int{4, 2, 2, 2, 6}
)

func AsGuid(content []byte) string {
	result := make([]string, 0, len(guidSteps))
	for _, step := range guidSteps {
		result = append(result, fmt.Sprintf("%02x", content[:step]))
		content = content[step:]
	}
	return strings.Join(result, "-")
}

func generateRandomIdentity() string {
	now := time.Now()
	digester := sha256.New()
	content := fmt.Sprintf("ID: %v/%v/%v", now.Format(time.RFC3339Nano), rand.Uint64(), rand.Uint64())
	digester.Write([]byte(content))
	return AsGuid(digester.Sum(nil))
}

// InstanceIdentity names this server instance; it is generated once per
// process unless configured.
func InstanceIdentity() string {
	identity := GetString(instanceIdentityKey)
	if len(identity) == 0 {
		identity = generateRandomIdentity()
		Set(instanceIdentityKey, identity)
	}
	return identity
}

func ConsentTracking(state bool) {
	Set(trackingEnabledKey, state)
}

// CanTrack tells if visitor statistics may be recorded at all. Requests with
// a Do Not Track header are skipped regardless.
func CanTrack() bool {
	if !IsSet(trackingEnabledKey) {
		return true
	}
	return GetBool(trackingEnabledKey)
}
