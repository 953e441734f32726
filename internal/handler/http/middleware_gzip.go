package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-game-conf/internal/app"
	"github.com/MKhiriev/go-game-conf/internal/utils"
	"github.com/MKhiriev/go-game-conf/models"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip. Passthrough config bodies are compressed as they
// are, so the decoded bytes stay identical to what the service returned.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				_, _ = utils.WriteJSON(w, models.ErrorResponse{
					Error:  app.MsgInvalidDataProvided,
					Detail: "request body is not valid gzip",
				}, http.StatusBadRequest)
				return
			}

			body := &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			// net/http only closes the original body
			defer body.Close()
			req.Body = body
			req.Header.Del("Content-Encoding")
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)
		gzipRW := &gzipResponseWriter{ResponseWriter: w, gzipWriter: gzipWriter}

		w.Header().Add("Vary", "Accept-Encoding")
		next.ServeHTTP(gzipRW, req)

		// the gzip trailer is written even for an empty body
		if !gzipRW.wroteHeader {
			gzipRW.WriteHeader(http.StatusOK)
		}
		_ = gzipWriter.Close()
		gzipWriterPool.Put(gzipWriter)
	})
}

// wrappedReadCloser runs OnClose at most once, so the pooled reader is never
// returned twice when both the handler and withGZip close it.
type wrappedReadCloser struct {
	io.Reader
	OnClose func()
	closed  bool
}

func (w *wrappedReadCloser) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies WriteHeader(http.StatusOK) so that Content-Encoding is set
// for handlers that never call WriteHeader.
func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.gzipWriter.Write(data)
}
