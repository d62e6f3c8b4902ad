//go:build !darwin && !linux && !windows

package keepalive

func newSink() Sink {
	return NopSink{}
}
