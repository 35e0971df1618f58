package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"taskdeck/internal/service"
)

// BasePath is where FakeServer mounts the tasks resource.
const BasePath = "/api/tasks"

// RecordedRequest is one request seen by FakeServer.
type RecordedRequest struct {
	Method    string
	Path      string
	Body      string
	Header    http.Header
	RequestID string
}

// FakeServer is an httptest server speaking the tasks REST shape.
type FakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	tasks    []service.Task
	nextID   int64
	requests []RecordedRequest

	// FailStatus makes the named operation ("list", "create", "update",
	// "delete") answer with the given status code.
	FailStatus map[service.Op]int

	// RawBody replaces the JSON body of a successful answer for an operation.
	RawBody map[service.Op]string

	// Block, when non-nil, is received from before every answer.
	Block chan struct{}
}

// NewFakeServer starts a FakeServer. Callers must Close it.
func NewFakeServer() *FakeServer {
	s := &FakeServer{
		nextID:     1,
		FailStatus: make(map[service.Op]int),
		RawBody:    make(map[service.Op]string),
	}

	r := mux.NewRouter()
	r.Use(s.record)
	r.HandleFunc(BasePath, s.list).Methods(http.MethodGet)
	r.HandleFunc(BasePath, s.create).Methods(http.MethodPost)
	r.HandleFunc(BasePath+"/{id:[0-9]+}", s.update).Methods(http.MethodPut)
	r.HandleFunc(BasePath+"/{id:[0-9]+}", s.delete).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(r)
	return s
}

// TasksURL returns the base URL of the tasks resource.
func (s *FakeServer) TasksURL() string {
	return s.URL + BasePath
}

// Seed adds a task to the server state and returns it.
func (s *FakeServer) Seed(title string, completed bool) service.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := service.Task{ID: s.nextID, Title: title, Completed: completed}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// Requests returns the requests seen so far.
func (s *FakeServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *FakeServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      string(body),
			Header:    r.Header.Clone(),
			RequestID: r.Header.Get("X-Request-ID"),
		})
		s.mu.Unlock()
		if s.Block != nil {
			select {
			case <-s.Block:
			case <-r.Context().Done():
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// answer writes v (or the raw override) unless a failure is configured.
func (s *FakeServer) answer(w http.ResponseWriter, op service.Op, status int, v interface{}) {
	s.mu.Lock()
	fail := s.FailStatus[op]
	raw, hasRaw := s.RawBody[op]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if fail != 0 {
		w.WriteHeader(fail)
		json.NewEncoder(w).Encode(map[string]string{"error": "injected failure"})
		return
	}
	w.WriteHeader(status)
	if hasRaw {
		w.Write([]byte(raw))
		return
	}
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func (s *FakeServer) list(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]service.Task, len(s.tasks))
	copy(out, s.tasks)
	s.mu.Unlock()
	s.answer(w, service.OpList, http.StatusOK, out)
}

func (s *FakeServer) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		http.Error(w, `{"error":"Title is required"}`, http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	t := service.Task{ID: s.nextID, Title: req.Title, CreatedAt: "2026-01-02T15:04:05Z"}
	s.nextID++
	s.tasks = append([]service.Task{t}, s.tasks...)
	s.mu.Unlock()
	s.answer(w, service.OpCreate, http.StatusCreated, t)
}

func (s *FakeServer) update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	var req struct {
		Completed *bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Completed == nil {
		http.Error(w, `{"error":"completed is required"}`, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	var (
		updated service.Task
		found   bool
	)
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = *req.Completed
			updated, found = s.tasks[i], true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		http.Error(w, `{"error":"Task not found"}`, http.StatusNotFound)
		return
	}
	s.answer(w, service.OpUpdate, http.StatusOK, updated)
}

func (s *FakeServer) delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	s.mu.Lock()
	found := false
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		http.Error(w, `{"error":"Task not found"}`, http.StatusNotFound)
		return
	}
	s.answer(w, service.OpDelete, http.StatusNoContent, nil)
}
