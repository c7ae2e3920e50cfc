package webserver

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"f1telemetrycompare/pkg/compare"

	"github.com/gorilla/mux"
)

var addr = ":8080"

type Manager struct {
	r  *mux.Router
	cm *compare.Manager
}

func NewManager(cm *compare.Manager) *Manager {
	m := &Manager{
		r:  mux.NewRouter(),
		cm: cm,
	}

	m.addHandlers()
	return m
}

func (m *Manager) router() *mux.Router {
	return m.r
}

func (m *Manager) addHandlers() {
	m.r.HandleFunc("/", m.indexHandler())
	m.r.HandleFunc("/compare", m.compareHandler())
	m.r.HandleFunc("/chart.svg", m.chartHandler())
	m.r.HandleFunc("/telemetry", m.telemetryHandler())

	fs := http.FileServer(http.Dir("./resources"))
	resStr := "/resources/"
	m.r.PathPrefix(resStr).Handler(http.StripPrefix(resStr, fs))
}

func (m *Manager) Debug() {
	_ = m.router().Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err == nil {
			fmt.Println("ROUTE:", pathTemplate)
		}
		methods, err := route.GetMethods()
		if err == nil {
			fmt.Println("Methods:", strings.Join(methods, ","))
		}
		fmt.Println()
		return nil
	})
}

func (m *Manager) Serve(exitChan <-chan bool) {
	if os.Getenv("WEBSERVER_ADDRESS") != "" {
		addr = os.Getenv("WEBSERVER_ADDRESS")
	}
	srv := &http.Server{
		Addr: addr,
		// Good practice to set timeouts to avoid Slowloris attacks.
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      m.router(), // Pass our instance of gorilla/mux in.
	}

	// Run our server in a goroutine so that it doesn't block.
	go func() {
		log.Printf("webserver listening on %s\n", addr)
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	// Block until the process is told to quit.
	<-exitChan

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Doesn't block if no connections, but will otherwise wait
	// until the timeout deadline.
	srv.Shutdown(ctx)
	log.Println("webserver shutting down")
}
