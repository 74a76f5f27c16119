package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPBasic(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:  "likes",
			Value: "ozone",
		})
		fmt.Fprintln(w, "Hello, client")
	}))
	defer ts.Close()

	jar, err := NewJar()
	if err != nil {
		t.Fatal(err)
	}

	req := HTTPRequest{
		URL:       ts.URL,
		CookieJar: jar,
	}

	saw := make(chan *HTTPResponse, 2)

	handler := func(ctx context.Context, r *HTTPResponse) error {
		saw <- r
		return nil
	}

	if err = req.Do(ctx, handler); err != nil {
		t.Fatal(err)
	}
	if err = req.Do(ctx, handler); err != nil {
		t.Fatal(err)
	}

	<-saw
	<-saw

	if len(jar.Kookies) == 0 {
		t.Fatal("no cookies")
	}
}

func TestFetchDefinition(t *testing.T) {
	ctx := context.Background()

	src := `
name: toy
reaction_list:
  RXN_1: NO2 -j> NO + O
`
	req := HTTPRequest{
		URL:          "http://example.com/mech.yaml",
		TestResponse: &HTTPResponse{StatusCode: http.StatusOK, Body: src},
	}

	var got string
	handler := func(ctx context.Context, r *HTTPResponse) error {
		got = r.Body
		return nil
	}
	if err := req.Do(ctx, handler); err != nil {
		t.Fatal(err)
	}
	if got != src {
		t.Fatal("TestResponse not returned")
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, src)
	}))
	defer ts.Close()

	def, err := FetchDefinition(ctx, ts.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "toy" {
		t.Fatalf("got %q", def.Name)
	}
	if _, have := def.ReactionList["RXN_1"]; !have {
		t.Fatal("RXN_1 missing")
	}
}
