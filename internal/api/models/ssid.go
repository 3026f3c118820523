package models

// SSIDRuleRequest is the request body for PUT /ssid-rules.
type SSIDRuleRequest struct {
	SSID      string `json:"ssid"       binding:"required"`
	ProfileID string `json:"profile_id" binding:"required"`
}

// SSIDRuleResponse maps a network to a profile.
type SSIDRuleResponse struct {
	SSID        string `json:"ssid"`
	ProfileID   string `json:"profile_id"`
	ProfileName string `json:"profile_name,omitempty"`
}

// SSIDResponse is the response for GET /system/ssid.
type SSIDResponse struct {
	SSID      string `json:"ssid,omitempty"`
	Connected bool   `json:"connected"`
}
