package handler

import (
	"context"
	"net"
	"net/http"
	"time"
)

// NewHTTPServer returns the API's *http.Server listening on addr.
//
// Request contexts derive from a root context that is cancelled as soon as
// Shutdown starts. http.Server never cancels in-flight requests itself, so
// without this an open chat stream would hold Shutdown until its deadline.
func NewHTTPServer(addr string, h http.Handler) *http.Server {
	root, cancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second, // StreamChat clears its own deadline
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return root },
	}
	srv.RegisterOnShutdown(cancel)
	return srv
}
