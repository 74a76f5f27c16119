// mexd serves a chemical mechanism over HTTP and WebSockets.
//
//	mexd -f mech.yaml -irr rates.db -h :8080
//
// then
//
//	curl -d '{"find":{"reactants":["NO"]}}' http://localhost:8080/api
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"runtime/pprof"

	"github.com/atmoschem/mex/mech"
	"github.com/atmoschem/mex/tools"
)

func main() {

	var (
		defFile = flag.String("f", "mech.yaml", "mechanism definition filename")
		defURL  = flag.String("u", "", "URL to fetch the mechanism definition from (instead of -f)")

		irrFile = flag.String("irr", "", "bbolt file with integrated reaction rates")
		iprFile = flag.String("ipr", "", "bbolt file with integrated process rates")

		httpPort  = flag.String("h", ":8080", "HTTP port for our service")
		wsService = flag.Bool("w", true, "WebSockets service")
		httpDir   = flag.String("s", "", "directory to serve via HTTP")

		listenOnStdin = flag.Bool("I", false, "listen for ops on stdin")
	)

	flag.BoolVar(&Verbose, "v", false, "log lots of wonderful things")

	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())

	var def *mech.Definition
	var err error
	if *defURL != "" {
		jar, err := NewJar()
		if err != nil {
			panic(err)
		}
		if def, err = FetchDefinition(ctx, *defURL, jar); err != nil {
			panic(err)
		}
	} else {
		if def, err = mech.LoadDefinition(*defFile); err != nil {
			panic(err)
		}
	}

	s, err := NewService(ctx, def)
	if err != nil {
		panic(err)
	}
	s.Tracing = Verbose

	if *irrFile != "" {
		if err := s.AttachIRRFile(*irrFile); err != nil {
			panic(err)
		}
	}
	if *iprFile != "" {
		if err := s.AttachIPRFile(*iprFile); err != nil {
			panic(err)
		}
	}

	s.Errors = make(chan interface{}, 8)
	monitor(ctx, s.Errors, "errors")

	if *listenOnStdin {
		go func() {
			if err := s.Listener(ctx, bufio.NewReader(os.Stdin), os.Stdout); err != nil {
				log.Printf("Service.Listener os.Stdin os.Stdout error %s", err)
			}
			Logf("stdin listener done")
			cancel()
		}()
	}

	if *httpPort != "" {
		go func() {
			if *wsService {
				log.Printf("WebSockets service starting")
				if err := s.WebSocketService(ctx); err != nil {
					panic(err)
				}
			}

			if *httpDir != "" {
				log.Printf("HTTP serving files in %s", *httpDir)
				fs := http.FileServer(http.Dir(*httpDir))
				http.Handle("/static/", http.StripPrefix("/static", fs))
			}

			http.HandleFunc("/mech.html", func(w http.ResponseWriter, r *http.Request) {
				s.mu.Lock()
				defer s.mu.Unlock()
				if err := tools.RenderMechanismPage(s.m, w, nil); err != nil {
					fmt.Fprintf(w, "RenderMechanismPage error: %s", err)
				}
			})

			log.Printf("HTTP service on %s", *httpPort)
			if err := s.HTTPServer(ctx, *httpPort); err != nil {
				panic(err)
			}
		}()
	}

	<-ctx.Done()
}

func monitor(ctx context.Context, c chan interface{}, tag string) {
	go func() {
		log.Printf("monitoring %s", tag)
	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			case x := <-c:
				log.Printf("%s %v", tag, x)
			}
		}
		log.Printf("halting monitoring of %s", tag)
	}()
}

func (s *Service) HTTPServer(ctx context.Context, port string) error {
	complain := func(w http.ResponseWriter, x interface{}, status int) {
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"error":"%s"}`+"\n", x)
	}

	http.Handle("/goroutines", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pprof.Lookup("goroutine").WriteTo(w, 1)
	}))

	http.Handle("/api", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		js, err := ioutil.ReadAll(r.Body)
		if err != nil {
			complain(w, err, http.StatusBadRequest)
			return
		}
		if err := r.Body.Close(); err != nil {
			log.Printf("Service.HTTPServer warning on Body.Close(): %v", err)
		}

		var op SOp
		if err := json.Unmarshal(js, &op); err != nil {
			complain(w, err, http.StatusBadRequest)
			return
		}
		if err = op.Do(ctx, s); err != nil {
			complain(w, err, http.StatusInternalServerError)
			return
		}
		js, err = json.Marshal(&op)
		if err != nil {
			complain(w, err, http.StatusInternalServerError)
		}
		if _, err = w.Write(js); err != nil {
			log.Printf("Service.HTTPServer warning on Write(): %v", err)
		}
	}))

	return http.ListenAndServe(port, nil)
}

// Listener reads one JSON operation per line, does it, and writes
// the completed operation back out.
func (s *Service) Listener(ctx context.Context, in *bufio.Reader, out io.Writer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := in.ReadBytes('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) || bytes.HasPrefix(line, []byte("//")) {
			continue
		}

		var op SOp
		if err := json.Unmarshal(line, &op); err != nil {
			fmt.Fprintf(out, `{"err":"can't parse: %s"}`+"\n", err)
			continue
		}
		if err := op.Do(ctx, s); err != nil {
			s.err(ctx, err)
		}
		js, err := json.Marshal(&op)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", js)
	}
}
