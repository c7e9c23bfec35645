package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
)

// Serves the offline catalog snapshot produced by export-mirror, for
// kiosk builds that cannot reach the API.
func main() {
	var (
		dataPath = flag.String("data", "data/mirror.json", "snapshot JSON path")
		addr     = flag.String("addr", ":9000", "listen address")
	)
	flag.Parse()

	http.HandleFunc("/drinks", func(w http.ResponseWriter, r *http.Request) {
		b, err := os.ReadFile(*dataPath)
		if err != nil {
			http.Error(w, "cannot read snapshot: "+err.Error(), http.StatusInternalServerError)
			return
		}
		// validate JSON so a bad file doesn't silently break clients
		var tmp any
		if err := json.Unmarshal(b, &tmp); err != nil {
			http.Error(w, "snapshot invalid JSON: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	})

	log.Printf("mirror-server listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
