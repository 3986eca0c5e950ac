package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// RegistryServer is a fake crates.io API serving /api/v1/crates/{name}
type RegistryServer struct {
	*httptest.Server

	mu     sync.Mutex
	crates map[string]registryReply
	hits   []string
}

type registryReply struct {
	status int
	body   string
}

// NewRegistryServer starts a fake registry closed at test cleanup
func NewRegistryServer(t *testing.T) *RegistryServer {
	t.Helper()

	rs := &RegistryServer{crates: make(map[string]registryReply)}
	rs.Server = httptest.NewServer(http.HandlerFunc(rs.serve))

	t.Cleanup(rs.Server.Close)
	return rs
}

// APIURL returns the API root to configure clients with
func (rs *RegistryServer) APIURL() string {
	return rs.URL + "/api/v1"
}

// AddCrate registers a 200 response for name
func (rs *RegistryServer) AddCrate(name, body string) {
	rs.Reply(name, http.StatusOK, body)
}

// Reply registers an arbitrary response for name
func (rs *RegistryServer) Reply(name string, status int, body string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.crates[name] = registryReply{status: status, body: body}
}

// Hits returns the crate names requested so far, in order
func (rs *RegistryServer) Hits() []string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return append([]string(nil), rs.hits...)
}

func (rs *RegistryServer) serve(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutPrefix(r.URL.Path, "/api/v1/crates/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	rs.mu.Lock()
	rs.hits = append(rs.hits, name)
	reply, found := rs.crates[name]
	rs.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !found {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":[{"detail":"crate ` + "`" + name + "`" + ` does not exist"}]}`))
		return
	}
	w.WriteHeader(reply.status)
	w.Write([]byte(reply.body))
}
