package sysinfo_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/master-bogdan/termfolio/hamlet"
	"github.com/master-bogdan/termfolio/sysinfo"
)

func TestSnapshotHasSaneValues(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	snapshot := sysinfo.Take()
	wont_be.Equal("", snapshot.Hostname)
	wont_be.Equal("", snapshot.Shell)
	must_be.Equal(runtime.GOOS, snapshot.OS)
	must_be.True(snapshot.CPUs > 0)
	must_be.True(snapshot.Width > 0)
	must_be.True(snapshot.Height > 0)
}

func TestUptimeNeverNegative(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	started := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	snapshot := sysinfo.Snapshot{Started: started}
	must_be.Equal(90*time.Second, snapshot.Uptime(started.Add(90*time.Second)))
	must_be.Equal(time.Duration(0), snapshot.Uptime(started.Add(-time.Hour)))
}
