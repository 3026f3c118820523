// Package switcher activates hosts profiles based on the Wi-Fi network.
//
// The switcher polls the current SSID on a fixed interval. When a rule maps
// the SSID to a profile that is not already active, it:
//   - writes the profile's document to the hosts file (with a backup)
//   - records the profile as active
//   - optionally flushes the OS DNS cache
//
// Networks without a rule leave the hosts file untouched.
package switcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jroosing/easyhosts/internal/database"
	"github.com/jroosing/easyhosts/internal/hosts"
)

// MinInterval is the shortest accepted poll interval.
const MinInterval = time.Second

// ProfileStore is the subset of the database the switcher needs.
type ProfileStore interface {
	ProfileForSSID(ssid string) (string, error)
	ActiveProfileID() (string, error)
	GetProfile(id string) (*database.Profile, error)
	SetActiveProfile(id string) error
}

// HostsWriter persists a document to the hosts file and returns the backup path.
type HostsWriter interface {
	Save(doc hosts.Document) (string, error)
}

// DetectFunc returns the current SSID; ok is false when not connected.
type DetectFunc func(ctx context.Context) (ssid string, ok bool, err error)

// FlushFunc clears the DNS cache after a switch.
type FlushFunc func(ctx context.Context) error

// Status represents the current switcher state.
type Status struct {
	Running       bool       `json:"running"`
	Interval      string     `json:"interval"`
	CurrentSSID   string     `json:"current_ssid,omitempty"`
	ActiveProfile string     `json:"active_profile_id,omitempty"`
	LastCheckTime *time.Time `json:"last_check_time,omitempty"`
	LastSwitch    *time.Time `json:"last_switch_time,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
	NextCheckTime *time.Time `json:"next_check_time,omitempty"`
	CheckCount    int64      `json:"check_count"`
	SwitchCount   int64      `json:"switch_count"`
	ErrorCount    int64      `json:"error_count"`
}

// Outcome describes one check.
type Outcome struct {
	SSID      string `json:"ssid,omitempty"`
	Connected bool   `json:"connected"`
	ProfileID string `json:"profile_id,omitempty"`
	Switched  bool   `json:"switched"`
	Backup    string `json:"backup,omitempty"`
}

// Switcher polls the SSID and applies mapped profiles.
type Switcher struct {
	interval  time.Duration
	logger    *slog.Logger
	profiles  ProfileStore
	hostsFile HostsWriter
	detect    DetectFunc
	flush     FlushFunc
	now       func() time.Time

	// checkMu serializes checks so a manual check cannot race the loop.
	checkMu sync.Mutex

	mu            sync.RWMutex
	running       bool
	currentSSID   string
	activeProfile string
	lastCheckTime *time.Time
	lastSwitch    *time.Time
	lastError     string
	nextCheckTime *time.Time
	checkCount    int64
	switchCount   int64
	errorCount    int64

	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates a switcher. flush may be nil to skip DNS flushing.
func New(
	interval time.Duration,
	logger *slog.Logger,
	profiles ProfileStore,
	hostsFile HostsWriter,
	detect DetectFunc,
	flush FlushFunc,
) (*Switcher, error) {
	if interval < MinInterval {
		return nil, fmt.Errorf("poll interval must be at least %s, got %s", MinInterval, interval)
	}
	if profiles == nil || hostsFile == nil || detect == nil {
		return nil, errors.New("profiles, hosts writer and detector are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Switcher{
		interval:  interval,
		logger:    logger,
		profiles:  profiles,
		hostsFile: hostsFile,
		detect:    detect,
		flush:     flush,
		now:       time.Now,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}, nil
}

// Start runs an immediate check and then polls in the background.
func (s *Switcher) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("switcher already running")
	}
	s.running = true
	s.mu.Unlock()

	s.logger.Info("ssid switcher starting", "interval", s.interval)

	if _, err := s.CheckNow(ctx); err != nil {
		s.logger.Warn("initial ssid check failed, will retry", "err", err)
	}

	go s.runLoop(ctx)
	return nil
}

// Stop stops polling and waits for the loop to exit.
func (s *Switcher) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	<-s.doneCh
	s.logger.Info("ssid switcher stopped")
}

// Status returns a snapshot of the switcher state.
func (s *Switcher) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		Running:       s.running,
		Interval:      s.interval.String(),
		CurrentSSID:   s.currentSSID,
		ActiveProfile: s.activeProfile,
		LastCheckTime: s.lastCheckTime,
		LastSwitch:    s.lastSwitch,
		LastError:     s.lastError,
		NextCheckTime: s.nextCheckTime,
		CheckCount:    s.checkCount,
		SwitchCount:   s.switchCount,
		ErrorCount:    s.errorCount,
	}
}

// CheckNow detects the SSID and applies its profile if needed.
func (s *Switcher) CheckNow(ctx context.Context) (Outcome, error) {
	s.checkMu.Lock()
	defer s.checkMu.Unlock()

	out, err := s.check(ctx)
	if err != nil {
		s.recordError(err)
		return out, err
	}
	s.recordCheck(out)
	return out, nil
}

func (s *Switcher) runLoop(ctx context.Context) {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		next := s.now().Add(s.interval)
		s.mu.Lock()
		s.nextCheckTime = &next
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if _, err := s.CheckNow(ctx); err != nil {
				s.logger.Warn("ssid check failed", "err", err)
			}
		}
	}
}

func (s *Switcher) check(ctx context.Context) (Outcome, error) {
	ssid, ok, err := s.detect(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("detect ssid: %w", err)
	}
	out := Outcome{SSID: ssid, Connected: ok}
	if !ok {
		s.logger.Debug("no wifi network detected")
		return out, nil
	}

	profileID, err := s.profiles.ProfileForSSID(ssid)
	if errors.Is(err, database.ErrNotFound) {
		s.logger.Debug("no profile rule for ssid", "ssid", ssid)
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("lookup rule: %w", err)
	}
	out.ProfileID = profileID

	active, err := s.profiles.ActiveProfileID()
	if err != nil {
		return out, fmt.Errorf("active profile: %w", err)
	}
	if active == profileID {
		return out, nil
	}

	profile, err := s.profiles.GetProfile(profileID)
	if err != nil {
		return out, fmt.Errorf("load profile: %w", err)
	}

	s.logger.Info("switching hosts profile",
		"ssid", ssid,
		"profile", profile.Name,
		"previous_profile_id", active,
	)

	backup, err := s.hostsFile.Save(profile.Document)
	if err != nil {
		return out, fmt.Errorf("write hosts file: %w", err)
	}
	out.Backup = backup

	if err := s.profiles.SetActiveProfile(profileID); err != nil {
		return out, fmt.Errorf("mark profile active: %w", err)
	}
	out.Switched = true

	if s.flush != nil {
		if err := s.flush(ctx); err != nil {
			// Don't fail the switch for flush errors
			s.logger.Warn("dns flush after switch failed", "err", err)
		}
	}

	return out, nil
}

func (s *Switcher) recordCheck(out Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.lastCheckTime = &now
	s.currentSSID = out.SSID
	s.lastError = ""
	s.checkCount++
	if out.Switched {
		s.lastSwitch = &now
		s.activeProfile = out.ProfileID
		s.switchCount++
	}
}

func (s *Switcher) recordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.lastCheckTime = &now
	s.lastError = err.Error()
	s.errorCount++
}
