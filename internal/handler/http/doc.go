// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, the HTML page handlers and the middleware in
// front of them. Request tracing, access logging, response compression,
// session loading and per-request store connections are handled here before
// requests are delegated to the service layer.
package http
