package system

import (
	"context"
	"fmt"
	"strings"
)

const airportPath = "/System/Library/PrivateFrameworks/Apple80211.framework/Versions/Current/Resources/airport"

// CurrentSSID returns the Wi-Fi network the machine is connected to. ok is
// false when no network could be detected.
func CurrentSSID(ctx context.Context, runner Runner, goos string) (ssid string, ok bool, err error) {
	switch goos {
	case "windows":
		return ssidWindows(ctx, runner)
	case "darwin":
		return ssidDarwin(ctx, runner)
	case "linux":
		ssid, ok = ssidLinux(ctx, runner)
		return ssid, ok, nil
	default:
		return "", false, fmt.Errorf("ssid detection: %w", ErrUnsupported)
	}
}

func ssidWindows(ctx context.Context, runner Runner) (string, bool, error) {
	res, err := runner.Run(ctx, "netsh", "wlan", "show", "interfaces")
	if err != nil {
		return "", false, err
	}
	if !res.Success() {
		return "", false, fmt.Errorf("netsh returned non-zero exit code: %d", res.ExitCode)
	}

	for l := range strings.Lines(res.Stdout) {
		// "    SSID                   : MyWifi"; BSSID lines do not match the prefix.
		trimmed := strings.TrimSpace(l)
		if !strings.HasPrefix(trimmed, "SSID") {
			continue
		}
		_, value, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}
		if ssid := strings.TrimSpace(value); ssid != "" {
			return ssid, true, nil
		}
	}
	return "", false, nil
}

func ssidDarwin(ctx context.Context, runner Runner) (string, bool, error) {
	if res, err := runner.Run(ctx, airportPath, "-I"); err == nil && res.Success() {
		for l := range strings.Lines(res.Stdout) {
			trimmed := strings.TrimSpace(l)
			if ssid, found := strings.CutPrefix(trimmed, "SSID:"); found {
				if ssid = strings.TrimSpace(ssid); ssid != "" {
					return ssid, true, nil
				}
			}
		}
	}

	res, err := runner.Run(ctx, "networksetup", "-getairportnetwork", "en0")
	if err != nil {
		return "", false, err
	}
	if !res.Success() {
		return "", false, nil
	}
	// "Current Wi-Fi Network: MyWifi"
	if _, value, found := strings.Cut(res.Stdout, ":"); found {
		if ssid := strings.TrimSpace(value); ssid != "" {
			return ssid, true, nil
		}
	}
	return "", false, nil
}

func ssidLinux(ctx context.Context, runner Runner) (string, bool) {
	if res, err := runner.Run(ctx, "nmcli", "-t", "-f", "active,ssid", "dev", "wifi"); err == nil && res.Success() {
		for l := range strings.Lines(res.Stdout) {
			// "yes:MyWifi" or "no:Other"
			active, ssid, found := strings.Cut(strings.TrimSpace(l), ":")
			if found && active == "yes" {
				if ssid = strings.TrimSpace(ssid); ssid != "" {
					return ssid, true
				}
			}
		}
	}

	if res, err := runner.Run(ctx, "iwgetid", "-r"); err == nil && res.Success() {
		if ssid := strings.TrimSpace(res.Stdout); ssid != "" {
			return ssid, true
		}
	}
	return "", false
}
