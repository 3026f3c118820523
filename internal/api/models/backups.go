package models

// BackupRequest identifies a backup by file name or full path.
type BackupRequest struct {
	Path string `json:"path" binding:"required"`
}

// BackupResponse describes one backup file.
type BackupResponse struct {
	Filename  string `json:"filename"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
	Size      int64  `json:"size"`
}

// BackupListResponse is the response for GET /backups.
type BackupListResponse struct {
	Directory string           `json:"directory"`
	Backups   []BackupResponse `json:"backups"`
}
