package handlers_test

import (
	"net/http"
	"testing"

	"github.com/jroosing/easyhosts/internal/api/models"
	"github.com/jroosing/easyhosts/internal/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linuxPingOutput = `PING db.local (10.0.0.5) 56(84) bytes of data.

--- db.local ping statistics ---
3 packets transmitted, 3 received, 0% packet loss, time 2003ms
rtt min/avg/max/mdev = 0.041/0.052/0.061/0.008 ms
`

func TestPing(t *testing.T) {
	env := newTestEnv(t)
	env.runner.set("ping -c 3 db.local", system.Result{Stdout: linuxPingOutput})
	env.runner.set("ping -c 3 10.0.0.99", system.Result{ExitCode: 1})

	w := env.do(http.MethodGet, "/api/v1/system/ping?host=db.local", "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[system.PingResult](t, w)
	assert.True(t, res.Success)
	require.NotNil(t, res.AvgRTT)
	assert.InDelta(t, 0.052, *res.AvgRTT, 1e-9)
	assert.Equal(t, "0.05ms", res.Message)

	w = env.do(http.MethodGet, "/api/v1/system/ping?host=10.0.0.99", "")
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[system.PingResult](t, w)
	assert.False(t, res.Success)
	assert.Equal(t, "Timeout", res.Message)

	w = env.do(http.MethodGet, "/api/v1/system/ping?host=-f", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[system.PingResult](t, w).Message, "Error")
	assert.Zero(t, env.runner.count("ping -c 3 -f"))

	w = env.do(http.MethodGet, "/api/v1/system/ping", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLookup(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/system/lookup?host=db.local", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.LookupResponse{Host: "db.local", IP: "10.0.0.5"}, decode[models.LookupResponse](t, w))

	w = env.do(http.MethodGet, "/api/v1/system/lookup?host=nowhere.local", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = env.do(http.MethodGet, "/api/v1/system/lookup", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlushDNSCache(t *testing.T) {
	env := newTestEnv(t)

	// neither resolvectl nor systemd-resolve is available
	w := env.do(http.MethodPost, "/api/v1/system/flush-dns", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	env.runner.set("resolvectl flush-caches", system.Result{})
	w = env.do(http.MethodPost, "/api/v1/system/flush-dns", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, env.runner.count("resolvectl flush-caches"))
}

func TestFlushDNSCache_UnsupportedOS(t *testing.T) {
	env := newTestEnv(t)
	env.handler.SetSystem(env.runner, fakeResolver{}, "plan9")

	w := env.do(http.MethodPost, "/api/v1/system/flush-dns", "")
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestCurrentSSID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/system/ssid", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[models.SSIDResponse](t, w).Connected)

	env.runner.set("nmcli -t -f active,ssid dev wifi", system.Result{Stdout: "no:Neighbour\nyes:CorpWiFi\n"})
	w = env.do(http.MethodGet, "/api/v1/system/ssid", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.SSIDResponse{SSID: "CorpWiFi", Connected: true}, decode[models.SSIDResponse](t, w))
}

func TestAdmin(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/system/admin", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.AdminResponse](t, w)
	assert.Equal(t, env.hostsPath, resp.HostsPath)
	assert.Equal(t, "linux", resp.OS)
	assert.Equal(t, system.IsAdmin(env.hostsPath), resp.Admin)
}
