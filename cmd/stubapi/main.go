package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/dkovalenko/crewdesk/internal/stubapi"
)

func main() {
	addr := flag.String("addr", ":8083", "listen address")
	seed := flag.String("seed", "", "path to a JSON seed file")
	flag.Parse()

	store := stubapi.NewStore()
	if *seed != "" {
		if err := store.LoadSeed(*seed); err != nil {
			log.Fatalf("loading seed: %v", err)
		}
	}

	router := stubapi.NewRouter(stubapi.NewHandler(store))

	log.Printf("stub backend listening on %s", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatalf("%v", err)
	}
}
