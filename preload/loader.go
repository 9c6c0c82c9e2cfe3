package preload

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	xdraw "golang.org/x/image/draw"

	"mirefall.dev/mirefall/fallback"
	"mirefall.dev/mirefall/sprite"
)

// result is one settled preload entry.
type result struct {
	img    image.Image
	loaded bool // true if the real asset decoded, false if the fallback is in use
}

// Loader preloads every sprite in a manifest on a bounded worker pool.
// Progress is observable while loading runs; once Done is closed, Image
// returns a non-nil image for every manifest entry.
type Loader struct {
	src  Source
	size int
	pool *ants.Pool

	descriptors []sprite.Descriptor

	mu      sync.Mutex
	results map[string]result

	loaded atomic.Int64
	failed atomic.Int64

	done  chan struct{}
	start sync.Once
}

// NewLoader creates a loader for the manifest entries. workers bounds how
// many images decode at once.
func NewLoader(src Source, m *Manifest, workers int) (*Loader, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("preload: %w", err)
	}
	if workers <= 0 {
		workers = 4
	}

	pool, err := ants.NewPool(workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("preload: failed to create worker pool: %w", err)
	}

	return &Loader{
		src:         src,
		size:        m.SpriteSize,
		pool:        pool,
		descriptors: m.Descriptors(),
		results:     make(map[string]result, len(m.Entries)),
		done:        make(chan struct{}),
	}, nil
}

// Start begins preloading. It returns immediately; observe completion via
// Done, Wait, or Progress. Calling Start more than once is a no-op.
func (l *Loader) Start() {
	l.start.Do(func() {
		go l.run()
	})
}

func (l *Loader) run() {
	defer close(l.done)
	defer l.pool.Release()

	var wg sync.WaitGroup
	for _, d := range l.descriptors {
		d := d
		wg.Add(1)
		if err := l.pool.Submit(func() {
			defer wg.Done()
			l.loadOne(d)
		}); err != nil {
			// Pool refused the task; settle the entry inline so the
			// preload still completes.
			l.loadOne(d)
			wg.Done()
		}
	}
	wg.Wait()
}

// loadOne settles a single entry: real asset if it decodes, fallback if not.
func (l *Loader) loadOne(d sprite.Descriptor) {
	img, err := l.src.Load(d.ImagePath)
	if err != nil {
		log.Printf("preload: %s unavailable, using fallback: %v", d.Name, err)
		l.settle(d.Name, l.normalize(fallback.ForDescriptor(d)), false)
		l.failed.Add(1)
		return
	}

	l.settle(d.Name, l.normalize(img), true)
	l.loaded.Add(1)
}

func (l *Loader) settle(name string, img image.Image, loaded bool) {
	l.mu.Lock()
	l.results[name] = result{img: img, loaded: loaded}
	l.mu.Unlock()
}

// normalize scales a decoded image to the manifest sprite size.
func (l *Loader) normalize(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() == l.size && b.Dy() == l.size {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, l.size, l.size))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Image returns the settled image for a sprite and whether the real asset
// loaded. It returns nil for sprites that have not settled yet or are not in
// the manifest.
func (l *Loader) Image(name string) (image.Image, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.results[name]
	if !ok {
		return nil, false
	}
	return r.img, r.loaded
}

// Progress reports the settled fraction in [0, 1]. An empty manifest is
// already complete.
func (l *Loader) Progress() float64 {
	total := len(l.descriptors)
	if total == 0 {
		return 1
	}
	settled := l.loaded.Load() + l.failed.Load()
	return float64(settled) / float64(total)
}

// Counts returns how many entries loaded from real assets and how many fell
// back, so far.
func (l *Loader) Counts() (loaded, failed int) {
	return int(l.loaded.Load()), int(l.failed.Load())
}

// Total returns the number of manifest entries.
func (l *Loader) Total() int {
	return len(l.descriptors)
}

// Done is closed once every entry has settled.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until preloading finishes or the context is cancelled.
func (l *Loader) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
