package logtail

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// notifier posts a wake-up token whenever the followed path changes. It
// watches the parent directory so events keep arriving after the file is
// renamed away and recreated. C holds at most one token; the poll timer
// still governs when nothing happens.
type notifier struct {
	w    *fsnotify.Watcher
	name string
	C    chan struct{}
	done chan struct{}
}

func newNotifier(path string, log zerolog.Logger) (*notifier, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	n := &notifier{
		w:    w,
		name: abs,
		C:    make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go n.loop(log)
	return n, nil
}

func (n *notifier) loop(log zerolog.Logger) {
	defer close(n.done)
	for {
		select {
		case ev, ok := <-n.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != n.name || ev.Op == fsnotify.Chmod {
				continue
			}
			select {
			case n.C <- struct{}{}:
			default:
			}
		case err, ok := <-n.w.Errors:
			if !ok {
				return
			}
			log.Debug().Err(err).Msg("file notification error")
		}
	}
}

// Close stops the watch and waits for the forwarding goroutine to exit.
func (n *notifier) Close() error {
	err := n.w.Close()
	<-n.done
	return err
}
