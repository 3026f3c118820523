package system

import (
	"context"
	"fmt"
	"net/netip"
	"regexp"
	"strconv"
	"strings"

	"github.com/jroosing/easyhosts/internal/hosts"
)

// PingResult summarizes a three-probe ping.
type PingResult struct {
	Success bool     `json:"success"`
	AvgRTT  *float64 `json:"avg_rtt"`
	Message string   `json:"message"`
}

var (
	unixRTT    = regexp.MustCompile(`(?:rtt|round-trip) min/avg/max/(?:mdev|stddev) = [\d.]+/([\d.]+)/`)
	windowsAvg = regexp.MustCompile(`(?:Average|평균) = (\d+(?:\.\d+)?)ms`)
)

// Ping sends three echo requests to host using the platform ping command.
func Ping(ctx context.Context, runner Runner, goos, host string) PingResult {
	host = strings.TrimSpace(host)
	if !validTarget(host) {
		return PingResult{Message: fmt.Sprintf("Error: invalid host %q", host)}
	}

	countFlag := "-c"
	if goos == "windows" {
		countFlag = "-n"
	}

	res, err := runner.Run(ctx, "ping", countFlag, "3", host)
	if err != nil {
		return PingResult{Message: fmt.Sprintf("Error: %v", err)}
	}
	if !res.Success() {
		return PingResult{Message: "Timeout"}
	}

	avg, ok := ParsePingOutput(res.Stdout)
	if !ok {
		return PingResult{Success: true, Message: "Success (RTT unknown)"}
	}
	return PingResult{Success: true, AvgRTT: &avg, Message: fmt.Sprintf("%.2fms", avg)}
}

// ParsePingOutput extracts the average round-trip time in milliseconds from
// Linux, BSD/macOS or Windows (English and Korean) ping output.
func ParsePingOutput(output string) (float64, bool) {
	for _, re := range []*regexp.Regexp{unixRTT, windowsAvg} {
		m := re.FindStringSubmatch(output)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// validTarget keeps option-looking strings away from the command line.
func validTarget(host string) bool {
	if host == "" || strings.HasPrefix(host, "-") {
		return false
	}
	if _, err := netip.ParseAddr(host); err == nil {
		return true
	}
	return hosts.IsValidHostname(host)
}
