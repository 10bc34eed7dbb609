// Package interactive is the full-screen terminal of the portfolio: a boot
// sequence, then a banner with quick commands, a prompt and the typewriter
// revealed output of the last command.
//
// Launch with: termfolio ui (or termfolio tui)
package interactive
