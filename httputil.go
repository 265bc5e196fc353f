package xirr

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
)

// HTTP plumbing for the quote fetcher: a transport that keeps responses on
// disk for the rest of the day, and a JSON GET helper.

// dayCache is a RoundTripper that caches responses on disk under os.TempDir.
// Today's date is part of the cache key, so every entry expires at midnight.
// Quotes older than that are stale for valuing holdings anyway.
type dayCache struct {
	next http.RoundTripper
}

func (c *dayCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := cacheKey(req)
	if resp, err := c.load(key, req); err == nil {
		return resp, nil
	}

	resp, err := c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		// error responses are not worth keeping for a day
		return resp, nil
	}
	if err := c.store(key, resp); err != nil {
		log.Printf("quote cache write failed (ignored): %v", err)
	}
	return resp, nil
}

// cacheKey hashes the request line together with today's date.
func cacheKey(req *http.Request) string {
	line := fmt.Sprintf("%s %s %s", Today(), req.Method, req.URL)
	return fmt.Sprintf("%x", sha1.Sum([]byte(line)))
}

func (c *dayCache) load(key string, req *http.Request) (*http.Response, error) {
	raw, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(raw)), req)
}

func (c *dayCache) store(key string, resp *http.Response) error {
	raw, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), raw, 0o644)
}

// quoteClient returns the HTTP client used against quote endpoints: cached
// until the end of day, or a plain client when live quotes are wanted.
func quoteClient(live bool) *http.Client {
	if live {
		return new(http.Client)
	}
	return &http.Client{Transport: &dayCache{http.DefaultTransport}}
}

// getJSON performs an HTTP GET and unmarshals the JSON response body into
// 'into'.
func getJSON(client *http.Client, addr string, into any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, into)
}
