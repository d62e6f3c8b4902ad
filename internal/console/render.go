package console

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/nodoze/nodoze/internal/session"
)

var (
	startedColor = color.New(color.FgGreen)
	waitingColor = color.New(color.FgCyan)
	quitColor    = color.New(color.FgYellow)
)

// Renderer draws session and wait progress as terminal bars. It implements
// session.Observer; one bar is alive at a time, matching the one-phase-at-a-
// time control flow.
type Renderer struct {
	remaining atomic.Int64 // seconds, read by the bar decorator

	p     *mpb.Progress
	bar   *mpb.Bar
	total int64
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SessionStarted(s session.Session) {
	r.finishBar()
	startedColor.Printf("Session started: %s | Duration: %d minutes | Ends: %s\n",
		s.Start.Format(timeLayout), int(s.Duration/time.Minute), s.End.Format(timeLayout))
	fmt.Println("Controls while running: [E] end session early, [Q] quit")
	r.startBar("RUN ", int64(s.Duration/time.Second))
}

func (r *Renderer) Progress(percent int, remaining time.Duration) {
	if r.bar == nil {
		return
	}
	r.remaining.Store(int64(remaining / time.Second))
	r.bar.SetCurrent(r.total - int64(remaining/time.Second))
}

func (r *Renderer) SessionEnded(at time.Time) {
	r.finishBar()
	fmt.Printf("Session ended: %s\n", at.Format(timeLayout))
}

func (r *Renderer) Waiting(target time.Time, remaining time.Duration) {
	if r.bar == nil {
		waitingColor.Printf("Next session starts at: %s\n", target.Format(timeLayout))
		r.startBar("WAIT", int64(remaining/time.Second))
	}
	r.remaining.Store(int64(remaining / time.Second))
	r.bar.SetCurrent(r.total - int64(remaining/time.Second))
}

func (r *Renderer) QuitRequested() {
	r.finishBar()
	quitColor.Println("Exiting.")
}

func (r *Renderer) startBar(name string, totalSeconds int64) {
	if totalSeconds < 1 {
		totalSeconds = 1
	}
	r.remaining.Store(totalSeconds)
	r.total = totalSeconds
	r.p = mpb.New(mpb.WithWidth(64))
	r.bar = r.p.New(totalSeconds,
		mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟"),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.Percentage(decor.WC{W: 5}),
		),
		mpb.AppendDecorators(
			decor.Any(func(decor.Statistics) string {
				return formatHHMMSS(time.Duration(r.remaining.Load()) * time.Second)
			}),
		),
	)
}

// finishBar tears the active bar down so plain status lines print cleanly.
func (r *Renderer) finishBar() {
	if r.bar == nil {
		return
	}
	r.bar.Abort(true)
	r.p.Wait()
	r.bar = nil
	r.p = nil
}

var _ session.Observer = (*Renderer)(nil)
