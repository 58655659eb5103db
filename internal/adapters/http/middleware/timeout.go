package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"
)

// Timeout enforces a per-request deadline. When the deadline passes with the
// handler still running, its buffered output is dropped and the client gets
// 504 Gateway Timeout. The deadline also rides the handler's context, so
// downstream I/O can bail out on its own.
//
// The handler runs in its own goroutine; bufferedWriter's mutex guarantees
// exactly one of the two paths writes the real response.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			bw := &bufferedWriter{dst: w}
			done := make(chan struct{})

			go func() {
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.replay()
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				if !bw.headerSet {
					w.WriteHeader(http.StatusGatewayTimeout)
				}
			}
		})
	}
}

// bufferedWriter holds back everything the handler writes so the timeout
// path can still send a clean 504. The mutex covers both goroutines.
type bufferedWriter struct {
	dst       http.ResponseWriter
	mu        sync.Mutex
	hdr       http.Header
	body      []byte
	status    int
	headerSet bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.hdr == nil {
		bw.hdr = make(http.Header)
	}
	return bw.hdr
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if !bw.headerSet {
		bw.status = http.StatusOK
		bw.headerSet = true
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.headerSet {
		return
	}
	bw.status = code
	bw.headerSet = true
}

// replay copies the buffered response onto the real writer. Callers hold
// bw.mu.
func (bw *bufferedWriter) replay() {
	if bw.hdr != nil {
		maps.Copy(bw.dst.Header(), bw.hdr)
	}
	if bw.headerSet {
		bw.dst.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = bw.dst.Write(bw.body)
	}
}
