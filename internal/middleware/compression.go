// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// gzipResponseWriter compresses the body with gzip. Compression starts on
// the first non-empty Write, so responses without a body (404, 201, 200 on
// mutations) go out uncompressed and truly empty.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	status      int
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if len(b) == 0 {
		return 0, nil
	}
	if w.gz == nil {
		// The handler encoded the body itself (promhttp does).
		if w.wroteHeader || w.Header().Get("Content-Encoding") != "" {
			if !w.wroteHeader {
				w.wroteHeader = true
				w.ResponseWriter.WriteHeader(w.status)
			}
			return w.ResponseWriter.Write(b)
		}
		w.start()
	}
	return w.gz.Write(b)
}

// start switches the response to gzip and sends the header.
func (w *gzipResponseWriter) start() {
	h := w.Header()
	h.Set("Content-Encoding", "gzip")
	h.Add("Vary", "Accept-Encoding")
	h.Del("Content-Length") // Length will be different after compression

	w.gz = gzipWriterPool.Get().(*gzip.Writer)
	w.gz.Reset(w.ResponseWriter)

	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(w.status)
}

// finish flushes the gzip stream, or sends the bare header if nothing was written.
func (w *gzipResponseWriter) finish() {
	if w.gz != nil {
		_ = w.gz.Close() // Explicitly ignore error - best-effort cleanup, response already sent
		gzipWriterPool.Put(w.gz)
		w.gz = nil
		return
	}
	if !w.wroteHeader && w.status != 0 {
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(w.status)
	}
}

// gzipWriterPool pools gzip writers to reduce allocations
var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// Compression middleware adds gzip compression to responses for clients
// that send Accept-Encoding: gzip.
func Compression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gzw := &gzipResponseWriter{ResponseWriter: w}
		defer gzw.finish()

		next.ServeHTTP(gzw, r)
	})
}
