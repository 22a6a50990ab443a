package profile

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind describes the type of file change detected.
type ChangeKind int

const (
	ChangeWritten ChangeKind = iota // Profile created or rewritten
	ChangeRemoved                   // Profile deleted or renamed away
)

// Change is a debounced modification of the watched profile.
type Change struct {
	Kind ChangeKind
	File string
}

const debounce = 100 * time.Millisecond

// Watcher reports changes to a single profile file. It watches the parent
// directory so editors that replace the file on save are still seen.
type Watcher struct {
	Path    string
	Changes <-chan Change

	changes  chan Change
	done     chan struct{}
	watcher  *fsnotify.Watcher
	started  bool
	stopOnce sync.Once
}

// NewWatcher creates a watcher for the profile at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 4)
	return &Watcher{
		Path:    abs,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching. The profile's directory must exist. On failure the
// underlying fsnotify watcher is released.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		w.Stop()
		return err
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel. It is safe to call more
// than once and without a successful Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.watcher.Close()
		if w.started {
			<-w.done
		}
		close(w.changes)
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	var (
		pending  bool
		kind     ChangeKind
		lastSeen time.Time
	)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if pending {
					w.emit(kind)
				}
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			switch {
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				kind = ChangeWritten
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				kind = ChangeRemoved
			default:
				continue
			}
			pending = true
			lastSeen = time.Now()

		case <-ticker.C:
			if pending && time.Since(lastSeen) >= debounce {
				w.emit(kind)
				pending = false
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

func (w *Watcher) emit(kind ChangeKind) {
	select {
	case w.changes <- Change{Kind: kind, File: w.Path}:
	default:
		// A change is already queued; the consumer reloads the whole file.
	}
}
