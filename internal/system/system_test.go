package system

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

// fakeRunner answers commands from a table keyed by "name arg1 arg2...".
type fakeRunner struct {
	results map[string]Result
	errs    map[string]error
	calls   []call
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (Result, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	key := strings.Join(append([]string{name}, args...), " ")
	if err, ok := f.errs[key]; ok {
		return Result{}, err
	}
	if res, ok := f.results[key]; ok {
		return res, nil
	}
	return Result{}, errors.New("executable file not found")
}

const linuxPing = `PING example.com (93.184.216.34) 56(84) bytes of data.
64 bytes from 93.184.216.34: icmp_seq=1 ttl=56 time=11.2 ms

--- example.com ping statistics ---
3 packets transmitted, 3 received, 0% packet loss, time 2003ms
rtt min/avg/max/mdev = 10.950/11.437/12.011/0.435 ms
`

const windowsPing = `Ping statistics for 93.184.216.34:
    Packets: Sent = 3, Received = 3, Lost = 0 (0% loss),
Approximate round trip times in milli-seconds:
    Minimum = 45ms, Maximum = 48ms, Average = 46ms
`

func TestParsePingOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   float64
		ok     bool
	}{
		{"linux", linuxPing, 11.437, true},
		{"macos", "round-trip min/avg/max/stddev = 1.1/2.5/3.0/0.2 ms\n", 2.5, true},
		{"windows", windowsPing, 46, true},
		{"korean", "    최소 = 1ms, 최대 = 3ms, 평균 = 2ms\n", 2, true},
		{"none", "request timed out\n", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePingOutput(tt.output)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestPing(t *testing.T) {
	ctx := context.Background()

	r := &fakeRunner{results: map[string]Result{"ping -c 3 example.com": {Stdout: linuxPing}}}
	res := Ping(ctx, r, "linux", "example.com")
	assert.True(t, res.Success)
	require.NotNil(t, res.AvgRTT)
	assert.InDelta(t, 11.437, *res.AvgRTT, 0.0001)
	assert.Equal(t, "11.44ms", res.Message)

	r = &fakeRunner{results: map[string]Result{"ping -n 3 10.0.0.1": {Stdout: "Reply from 10.0.0.1\n"}}}
	res = Ping(ctx, r, "windows", "10.0.0.1")
	assert.True(t, res.Success)
	assert.Nil(t, res.AvgRTT)
	assert.Equal(t, "Success (RTT unknown)", res.Message)

	r = &fakeRunner{results: map[string]Result{"ping -c 3 down.local": {ExitCode: 1}}}
	res = Ping(ctx, r, "linux", "down.local")
	assert.False(t, res.Success)
	assert.Equal(t, "Timeout", res.Message)

	r = &fakeRunner{}
	res = Ping(ctx, r, "linux", "-f")
	assert.False(t, res.Success)
	assert.Empty(t, r.calls)

	res = Ping(ctx, r, "linux", "missing.local")
	assert.False(t, res.Success)
	assert.True(t, strings.HasPrefix(res.Message, "Error:"))
}

func TestCurrentSSID_Linux(t *testing.T) {
	ctx := context.Background()

	r := &fakeRunner{results: map[string]Result{
		"nmcli -t -f active,ssid dev wifi": {Stdout: "no:Neighbor\nyes:Office\n"},
	}}
	ssid, ok, err := CurrentSSID(ctx, r, "linux")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Office", ssid)

	r = &fakeRunner{results: map[string]Result{"iwgetid -r": {Stdout: "HomeNet\n"}}}
	ssid, ok, err = CurrentSSID(ctx, r, "linux")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "HomeNet", ssid)

	ssid, ok, err = CurrentSSID(ctx, &fakeRunner{}, "linux")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, ssid)
}

func TestCurrentSSID_Darwin(t *testing.T) {
	ctx := context.Background()

	r := &fakeRunner{results: map[string]Result{
		airportPath + " -I": {Stdout: "     agrCtlRSSI: -55\n     BSSID: aa:bb\n           SSID: Cafe\n"},
	}}
	ssid, ok, err := CurrentSSID(ctx, r, "darwin")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Cafe", ssid)

	r = &fakeRunner{results: map[string]Result{
		"networksetup -getairportnetwork en0": {Stdout: "Current Wi-Fi Network: Lab\n"},
	}}
	ssid, ok, err = CurrentSSID(ctx, r, "darwin")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Lab", ssid)
}

func TestCurrentSSID_Windows(t *testing.T) {
	ctx := context.Background()
	out := "    Name                   : Wi-Fi\n    SSID                   : Corp Net\n    BSSID                  : aa:bb:cc\n"

	r := &fakeRunner{results: map[string]Result{"netsh wlan show interfaces": {Stdout: out}}}
	ssid, ok, err := CurrentSSID(ctx, r, "windows")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Corp Net", ssid)

	r = &fakeRunner{results: map[string]Result{"netsh wlan show interfaces": {ExitCode: 1}}}
	_, _, err = CurrentSSID(ctx, r, "windows")
	assert.Error(t, err)
}

func TestCurrentSSID_Unsupported(t *testing.T) {
	_, _, err := CurrentSSID(context.Background(), &fakeRunner{}, "plan9")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFlushDNS(t *testing.T) {
	ctx := context.Background()

	r := &fakeRunner{results: map[string]Result{"ipconfig /flushdns": {}}}
	require.NoError(t, FlushDNS(ctx, r, "windows"))

	r = &fakeRunner{results: map[string]Result{
		"dscacheutil -flushcache":    {},
		"killall -HUP mDNSResponder": {},
	}}
	require.NoError(t, FlushDNS(ctx, r, "darwin"))
	assert.Len(t, r.calls, 2)

	r = &fakeRunner{results: map[string]Result{
		"resolvectl flush-caches":        {ExitCode: 1, Stderr: "unit not found"},
		"systemd-resolve --flush-caches": {},
	}}
	require.NoError(t, FlushDNS(ctx, r, "linux"))

	r = &fakeRunner{results: map[string]Result{"resolvectl flush-caches": {ExitCode: 1, Stderr: "denied"}}}
	err := FlushDNS(ctx, r, "linux")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")

	assert.ErrorIs(t, FlushDNS(ctx, r, "plan9"), ErrUnsupported)
}

type fakeResolver struct {
	addrs []string
	err   error
}

func (f fakeResolver) LookupHost(context.Context, string) ([]string, error) {
	return f.addrs, f.err
}

func TestLookup(t *testing.T) {
	ctx := context.Background()

	ip, err := Lookup(ctx, fakeResolver{addrs: []string{"10.0.0.1", "10.0.0.2"}}, "db.local")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", ip)

	_, err = Lookup(ctx, fakeResolver{}, "db.local")
	assert.Error(t, err)

	_, err = Lookup(ctx, fakeResolver{err: errors.New("no such host")}, "db.local")
	assert.ErrorContains(t, err, "DNS lookup failed")

	_, err = Lookup(ctx, fakeResolver{}, " ")
	assert.Error(t, err)
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	sh, err := filepathLookSh()
	if err != nil {
		t.Skip("sh not available")
	}

	res, err := ExecRunner{}.Run(context.Background(), sh, "-c", "echo out; echo err >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.False(t, res.Success())

	_, err = ExecRunner{}.Run(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func filepathLookSh() (string, error) {
	for _, p := range []string{"/bin/sh", "/usr/bin/sh"} {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", os.ErrNotExist
}

func TestIsAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts")
	require.NoError(t, os.WriteFile(path, []byte("127.0.0.1 localhost\n"), 0o644))

	assert.True(t, IsAdmin(path))
	assert.False(t, IsAdmin(filepath.Join(t.TempDir(), "missing", "hosts")))
}
