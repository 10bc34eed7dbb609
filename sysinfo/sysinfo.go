// Package sysinfo takes a one-time snapshot of the host for cosmetic
// commands like neofetch.
package sysinfo

import (
	"os"
	"runtime"
	"time"

	"github.com/mitchellh/go-ps"
	"golang.org/x/term"

	"github.com/master-bogdan/termfolio/common"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	defaultShell  = "bash 5.1.16"
	defaultTerm   = "xterm-256color"
)

type Snapshot struct {
	Hostname  string    `json:"hostname"`
	OS        string    `json:"os"`
	Arch      string    `json:"arch"`
	GoVersion string    `json:"go"`
	CPUs      int       `json:"cpus"`
	Processes int       `json:"processes"`
	Shell     string    `json:"shell"`
	Terminal  string    `json:"terminal"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Started   time.Time `json:"started"`
}

// Take collects the snapshot. Failures fall back to plausible defaults.
func Take() Snapshot {
	defer common.Stopwatch("system snapshot took").Report()

	snapshot := Snapshot{
		Hostname:  "homelab",
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
		CPUs:      runtime.NumCPU(),
		Shell:     defaultShell,
		Terminal:  defaultTerm,
		Width:     defaultWidth,
		Height:    defaultHeight,
		Started:   common.When,
	}
	if hostname, err := os.Hostname(); err == nil && len(hostname) > 0 {
		snapshot.Hostname = hostname
	}
	if value := os.Getenv("TERM"); len(value) > 0 {
		snapshot.Terminal = value
	}
	processes, err := ps.Processes()
	if err != nil {
		common.Uncritical("listing processes", err)
	} else {
		snapshot.Processes = len(processes)
	}
	parent, err := ps.FindProcess(os.Getppid())
	if err == nil && parent != nil && len(parent.Executable()) > 0 {
		snapshot.Shell = parent.Executable()
	}
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && width > 0 && height > 0 {
		snapshot.Width, snapshot.Height = width, height
	}
	return snapshot
}

// Uptime is measured against now, so callers control the clock.
func (it Snapshot) Uptime(now time.Time) time.Duration {
	if now.Before(it.Started) {
		return 0
	}
	return now.Sub(it.Started)
}
