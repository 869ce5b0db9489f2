package layout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"tgobjects/pkg/logx"
)

const (
	reloadDebounce     = 250 * time.Millisecond
	restartBackoffBase = 250 * time.Millisecond
	restartBackoffMax  = 5 * time.Second
)

// Manager loads a layout file and, with Watch, republishes it whenever the
// file changes and still builds.
type Manager struct {
	path string

	mu  sync.RWMutex
	cur *Layout

	// subsMu guards the subscriber list and ensures we never send on a channel
	// that is concurrently being closed in Unsubscribe().
	subsMu sync.Mutex
	subs   []chan *Layout

	log logx.Logger

	// warnLimit throttles parse-failure warnings while an editor saves a
	// half-written file over and over.
	warnLimit *rate.Limiter

	// lastHash tracks the last committed layout content.
	lastHash uint64
}

func NewManager(path string) *Manager {
	return &Manager{
		path:      path,
		warnLimit: rate.NewLimiter(rate.Every(5*time.Second), 1),
	}
}

func (m *Manager) Path() string { return m.path }

func (m *Manager) SetLogger(log logx.Logger) {
	m.log = log.With(logx.String("component", "layout"))
}

// SetWarnRate changes how often reload warnings are logged; suppressed ones go
// to debug.
func (m *Manager) SetWarnRate(every time.Duration, burst int) {
	m.warnLimit = rate.NewLimiter(rate.Every(every), max(1, burst))
}

// Parse reads and builds the layout file without committing it.
func (m *Manager) Parse() (*Layout, error) {
	b, err := os.ReadFile(m.path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(m.path, b)
	if err != nil {
		return nil, err
	}
	return Compile(f)
}

// Decode strictly decodes a layout document. The format is picked from the
// file extension of path: .yaml/.yml are YAML, anything else is JSON.
func Decode(path string, data []byte) (File, error) {
	jb, format, err := coerceToJSONBytes(path, data)
	if err != nil {
		return File{}, fmt.Errorf("layout: %w", err)
	}

	var f File
	dec := json.NewDecoder(bytes.NewReader(jb))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("layout: %s decode: %w", format, err)
	}
	// reject trailing tokens (e.g. concatenated JSON)
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("layout: invalid %s: trailing data", format)
		}
		return File{}, fmt.Errorf("layout: %s decode: %w", format, err)
	}
	return f, nil
}

func (m *Manager) Commit(l *Layout) {
	m.mu.Lock()
	m.cur = l
	m.lastHash = hashFile(l.spec)
	m.mu.Unlock()
}

func (m *Manager) Load() (*Layout, error) {
	l, err := m.Parse()
	if err != nil {
		return nil, err
	}
	m.Commit(l)
	return l, nil
}

func (m *Manager) Get() *Layout {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

func (m *Manager) Subscribe(buffer int) chan *Layout {
	ch := make(chan *Layout, buffer)
	m.subsMu.Lock()
	m.subs = append(m.subs, ch)
	m.subsMu.Unlock()
	return ch
}

func (m *Manager) Unsubscribe(ch chan *Layout) {
	if ch == nil {
		return
	}
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	for i, s := range m.subs {
		if s == ch {
			// swap-remove (order doesn't matter)
			last := len(m.subs) - 1
			m.subs[i] = m.subs[last]
			m.subs[last] = nil
			m.subs = m.subs[:last]
			close(ch)
			return
		}
	}
}

func (m *Manager) publish(l *Layout) {
	// Hold subsMu while sending to avoid send-on-closed panics.
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	for _, ch := range m.subs {
		// Always try to deliver the latest layout: if the buffer is full, drop
		// ONE oldest item then push the newest.
		select {
		case ch <- l:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- l:
			default:
				m.log.Debug("layout update dropped (subscriber slow)",
					logx.Int("queue_len", len(ch)),
					logx.Int("queue_cap", cap(ch)),
				)
			}
		}
	}
}

func (m *Manager) warn(msg string, fields ...logx.Field) {
	if m.warnLimit == nil || m.warnLimit.Allow() {
		m.log.Warn(msg, fields...)
		return
	}
	m.log.Debug(msg, fields...)
}

// reload parses the file and commits/publishes it when it builds and differs
// from the current layout.
func (m *Manager) reload() {
	l, err := m.Parse()
	if err != nil {
		m.warn("layout reload failed", logx.String("path", m.path), logx.Err(err))
		return
	}

	h := hashFile(l.spec)
	m.mu.RLock()
	unchanged := h != 0 && h == m.lastHash
	prev := m.cur
	m.mu.RUnlock()
	if unchanged {
		m.log.Debug("layout unchanged; skipping publish", logx.String("path", m.path))
		return
	}

	m.Commit(l)
	m.publish(l)
	m.log.Info("layout reloaded", append([]logx.Field{logx.String("path", m.path)}, Diff(prev, l).Fields()...)...)
}

// Watch reloads the layout on file changes until ctx is done. It watches the
// parent directory so editors that replace the file on save are handled.
func (m *Manager) Watch(ctx context.Context) error {
	dir := filepath.Dir(m.path)
	file := filepath.Base(m.path)

	backoff := restartBackoffBase
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	nextWait := func() time.Duration {
		wait := backoff + time.Duration(rng.Int63n(int64(backoff/2)+1))
		backoff = min(backoff*2, restartBackoffMax)
		return wait
	}
	sleep := func(d time.Duration) bool {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(d):
			return true
		}
	}

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	debounce := func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		m.log.Debug("layout change detected; scheduling reload", logx.String("path", m.path))
		timer = time.AfterFunc(reloadDebounce, func() {
			if ctx.Err() == nil {
				m.reload()
			}
		})
	}
	defer func() {
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		w, err := fsnotify.NewWatcher()
		if err != nil {
			m.warn("layout watch init failed", logx.Err(err), logx.String("dir", dir))
			if !sleep(nextWait()) {
				return nil
			}
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			m.warn("layout watch add failed", logx.Err(err), logx.String("dir", dir))
			if !sleep(nextWait()) {
				return nil
			}
			continue
		}

		backoff = restartBackoffBase
		m.log.Debug("layout watcher started", logx.String("dir", dir), logx.String("file", file))

		// inner loop: runs until the watcher breaks, then the outer loop recreates it.
		broken := false
		for !broken {
			select {
			case <-ctx.Done():
				_ = w.Close()
				return nil
			case ev, ok := <-w.Events:
				if !ok {
					broken = true
					break
				}
				if strings.EqualFold(filepath.Base(ev.Name), file) &&
					ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove|fsnotify.Chmod) != 0 {
					debounce()
				}
			case err, ok := <-w.Errors:
				if !ok {
					broken = true
					break
				}
				if err == nil {
					continue
				}
				// Overflow means events were missed; reload once and keep going.
				if strings.Contains(strings.ToLower(err.Error()), "overflow") {
					m.warn("layout watch overflow; forcing reload", logx.Err(err), logx.String("dir", dir))
					debounce()
					continue
				}
				m.warn("layout watch error", logx.Err(err), logx.String("dir", dir))
				if strings.Contains(strings.ToLower(err.Error()), "closed") {
					broken = true
				}
			}
		}

		_ = w.Close()
		wait := nextWait()
		m.warn("layout watcher stopped; restarting",
			logx.String("dir", dir),
			logx.String("file", file),
			logx.Duration("backoff", wait),
		)
		if !sleep(wait) {
			return nil
		}
	}
}
