package system

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// FlushDNS clears the operating system's DNS cache.
func FlushDNS(ctx context.Context, runner Runner, goos string) error {
	switch goos {
	case "windows":
		return runChecked(ctx, runner, "ipconfig", "/flushdns")
	case "darwin":
		if err := runChecked(ctx, runner, "dscacheutil", "-flushcache"); err != nil {
			return err
		}
		return runChecked(ctx, runner, "killall", "-HUP", "mDNSResponder")
	case "linux":
		err := runChecked(ctx, runner, "resolvectl", "flush-caches")
		if err == nil {
			return nil
		}
		// Older systemd releases only ship systemd-resolve.
		if fallback := runChecked(ctx, runner, "systemd-resolve", "--flush-caches"); fallback != nil {
			return errors.Join(err, fallback)
		}
		return nil
	default:
		return fmt.Errorf("dns flush: %w", ErrUnsupported)
	}
}

// HostResolver is satisfied by *net.Resolver.
type HostResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Lookup resolves host and returns its first address.
func Lookup(ctx context.Context, resolver HostResolver, host string) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", errors.New("host is required")
	}
	addrs, err := resolver.LookupHost(ctx, host)
	if err != nil {
		return "", fmt.Errorf("DNS lookup failed: %w", err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("no IP address found for %s", host)
	}
	return addrs[0], nil
}

func runChecked(ctx context.Context, runner Runner, name string, args ...string) error {
	res, err := runner.Run(ctx, name, args...)
	if err != nil {
		return err
	}
	if !res.Success() {
		msg := strings.TrimSpace(res.Stderr)
		if msg == "" {
			msg = strings.TrimSpace(res.Stdout)
		}
		return fmt.Errorf("%s exited with code %d: %s", name, res.ExitCode, msg)
	}
	return nil
}
