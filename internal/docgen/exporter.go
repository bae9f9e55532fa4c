package docgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrBusy means a capture or export is already in flight.
	ErrBusy = errors.New("docgen: export already in progress")
	// ErrCapture wraps rasterization failures.
	ErrCapture = errors.New("docgen: capture failed")
	// ErrExport wraps PDF assembly failures.
	ErrExport = errors.New("docgen: export failed")
)

// Status messages shown while an export runs.
const (
	statusIdle       = ""
	statusWorking    = "กำลังสร้างเอกสาร..."
	statusDone       = "สร้างเอกสารเรียบร้อย"
	statusFailed     = "สร้างเอกสารไม่สำเร็จ"
	statusNoRenderer = "ระบบสร้างเอกสารยังไม่พร้อมใช้งาน"
)

const filenameTemplate = "quotation-%s.pdf"

// Artifact is one generated document.
type Artifact struct {
	Filename    string
	Data        []byte
	GeneratedAt time.Time
}

// Exporter runs the capture -> PDF pipeline with a single-flight
// guard: while one user-triggered action is in progress, further
// triggers are rejected with ErrBusy rather than queued.
type Exporter struct {
	rast Rasterizer

	busy     atomic.Bool
	statusMu sync.RWMutex
	status   string
}

// NewExporter builds an exporter over the given rasterizer. A nil
// rasterizer models the capability being absent: every capture fails
// fast with ErrCapabilityUnavailable.
func NewExporter(rast Rasterizer) *Exporter {
	return &Exporter{rast: rast}
}

// Busy reports whether a capture or export is in flight.
func (e *Exporter) Busy() bool { return e.busy.Load() }

// Status is the current user-facing progress message.
func (e *Exporter) Status() string {
	e.statusMu.RLock()
	defer e.statusMu.RUnlock()
	return e.status
}

func (e *Exporter) setStatus(s string) {
	e.statusMu.Lock()
	e.status = s
	e.statusMu.Unlock()
}

// Export captures the region and assembles the downloadable PDF named
// after the document number.
func (e *Exporter) Export(ctx context.Context, region Region, documentNumber string) (Artifact, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return Artifact{}, ErrBusy
	}
	defer e.busy.Store(false)

	img, err := e.capture(ctx, region)
	if err != nil {
		return Artifact{}, err
	}

	data, err := BuildPDF(img)
	if err != nil {
		e.setStatus(statusFailed)
		return Artifact{}, fmt.Errorf("%w: %v", ErrExport, err)
	}

	e.setStatus(statusDone)
	return Artifact{
		Filename:    fmt.Sprintf(filenameTemplate, documentNumber),
		Data:        data,
		GeneratedAt: time.Now(),
	}, nil
}

// Preview captures the region and returns it as inline PNG bytes.
func (e *Exporter) Preview(ctx context.Context, region Region) ([]byte, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.busy.Store(false)

	img, err := e.capture(ctx, region)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		e.setStatus(statusFailed)
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	e.setStatus(statusDone)
	return buf.Bytes(), nil
}

// capture runs the rasterizer under the fixed capture options. The
// caller holds the busy flag.
func (e *Exporter) capture(ctx context.Context, region Region) (image.Image, error) {
	if e.rast == nil {
		e.setStatus(statusNoRenderer)
		return nil, ErrCapabilityUnavailable
	}
	e.setStatus(statusWorking)
	out, err := e.rast.Capture(ctx, region, DefaultCaptureOptions())
	if err != nil {
		if errors.Is(err, ErrCapabilityUnavailable) {
			e.setStatus(statusNoRenderer)
			return nil, err
		}
		e.setStatus(statusFailed)
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}
	return out, nil
}
