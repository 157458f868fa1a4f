//go:build !linux

package device

func sysRemovable(string) bool { return false }
