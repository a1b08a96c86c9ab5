// Command gomorse-server streams decoded morse over a WebSocket: a
// client connects, sends JSON {"is_mark":bool,"duration_ms":float64}
// frames, and receives back JSON {"text":string} frames as letters and
// word breaks become available. Grounded on the teacher's
// websocket.go (upgrader settings, per-connection goroutine, JSON
// WriteMessage) generalized from raw audio framing to morse samples.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cwsl/gomorse/config"
	"github.com/cwsl/gomorse/morse"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type sampleFrame struct {
	IsMark     bool    `json:"is_mark"`
	DurationMs float64 `json:"duration_ms"`
}

type textFrame struct {
	Text string `json:"text"`
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[gomorse-server] %v", err)
		}
		cfg = loaded
	}

	codebook, err := morse.DefaultCodebook()
	if err != nil {
		log.Fatalf("[gomorse-server] %v", err)
	}

	// One shared registry for every connection's Decoder, so /metrics
	// reflects exactly what each session's instrumentation writes to
	// instead of an unrelated global default registry (morse/metrics.go,
	// NewMetricsWithRegistry).
	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
	}

	pub, err := morse.NewSpotPublisher(cfg.MQTT)
	if err != nil {
		log.Fatalf("[gomorse-server] %v", err)
	}
	defer pub.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("/decode", handleDecode(cfg, codebook, registry, pub))
	if registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	log.Printf("[gomorse-server] listening on %s", cfg.Server.Listen)
	if err := http.ListenAndServe(cfg.Server.Listen, mux); err != nil {
		log.Fatalf("[gomorse-server] %v", err)
	}
}

func handleDecode(cfg config.Config, codebook *morse.Codebook, registry *prometheus.Registry, pub *morse.SpotPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("[gomorse-server] upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		id := morse.NewSessionID()
		var metrics *morse.Metrics
		if registry != nil {
			metrics = morse.NewMetricsWithRegistry(registry, id)
		}
		dec := morse.NewDecoderWithID(id, cfg.Decoder, codebook, metrics)
		defer dec.Close()

		log.Printf("[gomorse-server] decoder %s connected", dec.ID())

		done := make(chan struct{})
		go pumpOutput(conn, dec, pub, done)

		for {
			var frame sampleFrame
			if err := conn.ReadJSON(&frame); err != nil {
				break
			}
			if err := dec.Put(morse.Sample{IsMark: frame.IsMark, DurationMs: frame.DurationMs}); err != nil {
				log.Printf("[gomorse-server] decoder %s: %v", dec.ID(), err)
				break
			}
		}

		_ = dec.Close()
		<-done
		if metrics != nil {
			if cfg.Metrics.PushURL != "" {
				if err := metrics.Push(cfg.Metrics.PushURL, cfg.Metrics.PushJob); err != nil {
					log.Printf("[gomorse-server] decoder %s: metrics push failed: %v", dec.ID(), err)
				}
			}
			metrics.Unregister()
		}
		log.Printf("[gomorse-server] decoder %s disconnected", dec.ID())
	}
}

func pumpOutput(conn *websocket.Conn, dec *morse.Decoder, pub *morse.SpotPublisher, done chan<- struct{}) {
	defer close(done)
	for {
		text, err := dec.Get(true)
		if err != nil {
			return
		}
		if err := pub.Publish(dec.ID(), text, time.Now()); err != nil {
			log.Printf("[gomorse-server] decoder %s: spot publish failed: %v", dec.ID(), err)
		}
		if err := conn.WriteJSON(textFrame{Text: text}); err != nil {
			return
		}
	}
}
