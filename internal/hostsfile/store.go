// Package hostsfile reads and writes the system hosts file and keeps
// timestamped backups next to it.
//
// All operations on one Store are serialized so that a Save never interleaves
// with a Restore or a Reset of the same file.
package hostsfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jroosing/easyhosts/internal/hosts"
)

const (
	// BackupPrefix starts every backup file name.
	BackupPrefix = "hosts.bak_"
	// BackupTimeLayout is the timestamp layout following BackupPrefix.
	BackupTimeLayout = "20060102_150405"
)

var (
	// ErrInvalidBackup is returned for backup paths outside the backup directory
	// or without the backup prefix.
	ErrInvalidBackup = errors.New("invalid backup path")
	// ErrResetUnsupported is returned by ResetToDefault on platforms without a
	// known default hosts file.
	ErrResetUnsupported = errors.New("reset to default is only supported on Windows")
)

// BackupInfo describes one backup file.
type BackupInfo struct {
	Filename  string `json:"filename"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
	Size      int64  `json:"size"`
}

// DefaultPath returns the hosts file location for the given GOOS value.
func DefaultPath(goos string) string {
	if goos == "windows" {
		return `C:\Windows\System32\drivers\etc\hosts`
	}
	return "/etc/hosts"
}

// Store manages one hosts file and its backups.
type Store struct {
	path      string
	backupDir string
	goos      string
	now       func() time.Time

	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithBackupDir stores backups in dir instead of the hosts file's directory.
func WithBackupDir(dir string) Option {
	return func(s *Store) {
		if dir != "" {
			s.backupDir = dir
		}
	}
}

// WithClock overrides the time source used for backup names.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithGOOS overrides the platform used by ResetToDefault.
func WithGOOS(goos string) Option {
	return func(s *Store) { s.goos = goos }
}

// New creates a Store for the hosts file at path. An empty path selects the
// platform default.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultPath(runtime.GOOS)
	}
	s := &Store{
		path:      path,
		backupDir: filepath.Dir(path),
		goos:      runtime.GOOS,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the hosts file path.
func (s *Store) Path() string {
	return s.path
}

// BackupDir returns the directory backups are written to.
func (s *Store) BackupDir() string {
	return s.backupDir
}

// Read returns the raw hosts file content.
func (s *Store) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Load reads and parses the hosts file.
func (s *Store) Load() (hosts.Document, error) {
	content, err := s.Read()
	if err != nil {
		return hosts.Document{}, err
	}
	return hosts.Parse(content), nil
}

// Save backs up the current file and writes doc in its place. It returns the
// backup path.
func (s *Store) Save(doc hosts.Document) (string, error) {
	return s.WriteRaw(hosts.Serialize(doc))
}

// WriteRaw backs up the current file and writes content verbatim. It returns
// the backup path.
func (s *Store) WriteRaw(content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup, err := s.backup()
	if err != nil {
		return "", err
	}
	if err := s.write(content); err != nil {
		return "", err
	}
	return backup, nil
}

// Backup copies the current hosts file to a timestamped backup and returns its path.
func (s *Store) Backup() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backup()
}

// ListBackups returns all backups, newest first.
func (s *Store) ListBackups() ([]BackupInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirEntries, err := os.ReadDir(s.backupDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasPrefix(name, BackupPrefix) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to get metadata for %s: %w", name, err)
		}
		backups = append(backups, BackupInfo{
			Filename:  name,
			Path:      filepath.Join(s.backupDir, name),
			Timestamp: strings.TrimPrefix(name, BackupPrefix),
			Size:      info.Size(),
		})
	}

	slices.SortFunc(backups, func(a, b BackupInfo) int {
		return strings.Compare(b.Timestamp, a.Timestamp)
	})
	return backups, nil
}

// Restore backs up the current file, then replaces it with the content of the
// given backup.
func (s *Store) Restore(backupPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.checkBackupPath(backupPath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}
	if _, err := s.backup(); err != nil {
		return err
	}
	return s.write(string(data))
}

// DeleteBackup removes a backup file.
func (s *Store) DeleteBackup(backupPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.checkBackupPath(backupPath)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete backup file: %w", err)
	}
	return nil
}

// ResetToDefault backs up the current file and restores the operating
// system's stock hosts file.
func (s *Store) ResetToDefault() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.goos != "windows" {
		return ErrResetUnsupported
	}
	if _, err := s.backup(); err != nil {
		return err
	}
	return s.write(WindowsDefault)
}

func (s *Store) read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read hosts file at %s: %w", s.path, err)
	}
	return string(data), nil
}

func (s *Store) write(content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(s.path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write hosts file: %w", err)
	}
	return nil
}

func (s *Store) backup() (string, error) {
	content, err := s.read()
	if err != nil {
		return "", fmt.Errorf("failed to read hosts file for backup: %w", err)
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := BackupPrefix + s.now().Format(BackupTimeLayout)
	path := filepath.Join(s.backupDir, name)
	// Several writes within one second must not overwrite each other.
	for i := 1; fileExists(path); i++ {
		path = filepath.Join(s.backupDir, fmt.Sprintf("%s_%d", name, i))
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return path, nil
}

// checkBackupPath accepts either a bare backup file name or a path inside the
// backup directory.
func (s *Store) checkBackupPath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidBackup)
	}
	if !filepath.IsAbs(p) && filepath.Base(p) == p {
		p = filepath.Join(s.backupDir, p)
	}

	clean := filepath.Clean(p)
	if filepath.Dir(clean) != filepath.Clean(s.backupDir) {
		return "", fmt.Errorf("%w: %s is outside %s", ErrInvalidBackup, p, s.backupDir)
	}
	if !strings.HasPrefix(filepath.Base(clean), BackupPrefix) {
		return "", fmt.Errorf("%w: %s is not a hosts backup", ErrInvalidBackup, p)
	}
	return clean, nil
}

func fileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
