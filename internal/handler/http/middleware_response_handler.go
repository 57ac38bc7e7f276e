// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
)

// responseWriter records the status code and body size of a response for
// the access log. The header is forwarded to the wrapped writer once.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write sends an implicit 200 when no status was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// accessRecord carries request facts that are only learned by inner
// middlewares back out to withLogging. Inner handlers see a derived request,
// so the record is shared by pointer.
type accessRecord struct {
	username string
}

type accessRecordCtxKey struct{}

func withAccessRecord(ctx context.Context, rec *accessRecord) context.Context {
	return context.WithValue(ctx, accessRecordCtxKey{}, rec)
}

func accessRecordFrom(ctx context.Context) (*accessRecord, bool) {
	rec, ok := ctx.Value(accessRecordCtxKey{}).(*accessRecord)
	return rec, ok && rec != nil
}
