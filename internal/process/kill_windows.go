//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillGroup terminates pid and its child processes with taskkill.
func KillGroup(pid int) {
	if pid <= 0 {
		return
	}
	// /F force, /T include children
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
