// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swiped/counter"
	"github.com/bitmark-inc/swiped/ledger"
)

// Handler - the HTTPS endpoints
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type handler struct {
	sync.RWMutex
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	maximumConnections uint64
	connections        counter.Counter
	rpcCount           *counter.Counter
	service            ledger.Service
	allow              map[string][]*net.IPNet
}

// New - create the HTTPS handlers
//
// rpcCount is the connection count of the TLS RPC listener, shown by details
func New(
	log *logger.L,
	server *rpc.Server,
	start time.Time,
	version string,
	maximumConnections uint64,
	service ledger.Service,
	rpcCount *counter.Counter,
) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		maximumConnections: maximumConnections,
		rpcCount:           rpcCount,
		service:            service,
		allow:              make(map[string][]*net.IPNet),
	}
}

// SetAllow - replace the access control lists, keyed by endpoint name
func (s *handler) SetAllow(allow map[string][]*net.IPNet) {
	s.Lock()
	s.allow = allow
	s.Unlock()
}

// Root - this matches anything not matched and returns error
func (s *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (s *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.connections.Acquire(s.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer s.connections.Release()

	if nil == r.Body {
		sendInternalServerError(w)
		return
	}

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		s.log.Warnf("rpc request error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// DetailsReply - status of the running server
type DetailsReply struct {
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	Users       uint64 `json:"users"`
	Tokens      uint64 `json:"tokens"`
	RPCs        uint64 `json:"rpcs"`
	Connections uint64 `json:"connections"`
}

// Details - GET the status of the server (restricted by allow["details"])
func (s *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("details", r.RemoteAddr) {
		s.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if !s.connections.Acquire(s.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer s.connections.Release()

	reply := DetailsReply{
		Version:     s.version,
		Uptime:      time.Since(s.start).String(),
		Users:       s.service.UsersCount(),
		Tokens:      s.service.TokenEntriesCount(),
		Connections: s.connections.Uint64(),
	}
	if nil != s.rpcCount {
		reply.RPCs = s.rpcCount.Uint64()
	}

	sendReply(w, reply)
}

func (s *handler) isAllowed(name string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}

	s.RLock()
	defer s.RUnlock()
	for _, cidr := range s.allow[name] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
