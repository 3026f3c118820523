package models

// LookupResponse is the response for GET /system/lookup.
type LookupResponse struct {
	Host string `json:"host"`
	IP   string `json:"ip"`
}

// AdminResponse reports whether the server may write the hosts file.
type AdminResponse struct {
	Admin     bool   `json:"admin"`
	HostsPath string `json:"hosts_path"`
	OS        string `json:"os"`
}
