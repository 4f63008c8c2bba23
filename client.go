package hashext

import (
	"context"
	"fmt"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// NewClient creates a new client.
// Missing FS, Log and Debug options are filled with defaults,
// a nil ForgeryStore disables caching.
func NewClient(options ClientOptions) Client {
	options.fillDefaults()

	return Client{
		options: options,
	}
}

// Client is the boundary API around Hash and Extend.
// It validates user input, fills the filler base, logs and caches.
type Client struct {
	options ClientOptions
}

// Hash returns the digest of message
func (c Client) Hash(message []byte) string {
	c.options.Log(fmt.Sprintf("Hashing %d bytes", len(message)))
	return Hash(message)
}

// Extend performs the length extension attack described by request.
// The request is fully validated before any hashing happens.
func (c Client) Extend(request ExtendRequest) (Forgery, error) {
	base, err := request.base()
	if err != nil {
		return Forgery{}, err
	}

	if _, err := StateFromDigest(request.BaseDigest); err != nil {
		return Forgery{}, err
	}

	key := request.cacheKey(base)

	if c.options.ForgeryStore != nil {
		found, forgery, err := c.cacheStatusForgery(key)
		if err != nil {
			return Forgery{}, err
		}

		if found {
			c.options.Log(fmt.Sprintf("Forgery for %s is cached", request.BaseDigest))
			return forgery, nil
		}

		c.options.Debug("Cache miss for " + key)
	}

	if request.AssumedBase == nil {
		c.options.Log(fmt.Sprintf("Base is unknown, using %d filler bytes", request.BaseLength))
	}

	c.options.Log(fmt.Sprintf(
		"Extending %s (base length %d) with %d bytes",
		request.BaseDigest,
		request.BaseLength,
		len(request.Extension),
	))

	forgery, err := Extend(base, request.BaseDigest, request.Extension)
	if err != nil {
		return Forgery{}, err
	}

	c.options.Debug(fmt.Sprintf("Forged message is %d bytes", len(forgery.MessageHex)/2))

	if c.options.ForgeryStore != nil {
		if err := c.cacheSetForgery(key, forgery); err != nil {
			return Forgery{}, err
		}
	}

	return forgery, nil
}

// ExtendBatch runs Extend for every request in a separate goroutine.
// If any of the requests fails it will stop the remaining ones
// and return the error immediately.
// Forgeries are returned in the order of requests.
func (c Client) ExtendBatch(
	ctx context.Context,
	requests []ExtendRequest,
) ([]Forgery, error) {
	c.options.Log(fmt.Sprintf("Extending %d requests", len(requests)))

	g, ctx := errgroup.WithContext(ctx)

	forgeries := make([]Forgery, len(requests))

	for i, request := range requests {
		i, request := i, request
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			forgery, err := c.Extend(request)
			if err != nil {
				return fmt.Errorf("request #%d: %w", i+1, err)
			}

			c.options.Log(fmt.Sprintf("Request #%03d: done", i+1))

			forgeries[i] = forgery
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return forgeries, nil
}

// WriteForgery saves forgery as YAML at path
func (c Client) WriteForgery(path string, forgery Forgery) error {
	c.options.Log("Writing forgery to " + path)

	marshalled, err := yaml.Marshal(forgery)
	if err != nil {
		return err
	}

	return writeFile(c.options.FS, path, marshalled)
}

// WriteBatchResults saves results as a YAML list at path
func (c Client) WriteBatchResults(path string, results []BatchResult) error {
	c.options.Log(fmt.Sprintf("Writing %d results to %s", len(results), path))

	marshalled, err := yaml.Marshal(results)
	if err != nil {
		return err
	}

	return writeFile(c.options.FS, path, marshalled)
}

// LoadBatch reads a batch file from the client filesystem
func (c Client) LoadBatch(path string) (*BatchFile, error) {
	c.options.Log("Loading batch file " + path)
	return LoadBatch(c.options.FS, path)
}

// RunBatch runs all jobs of the batch file and pairs them with their forgeries
func (c Client) RunBatch(ctx context.Context, batch *BatchFile) ([]BatchResult, error) {
	requests, err := batch.Requests()
	if err != nil {
		return nil, err
	}

	forgeries, err := c.ExtendBatch(ctx, requests)
	if err != nil {
		return nil, err
	}

	results := make([]BatchResult, len(forgeries))
	for i, forgery := range forgeries {
		results[i] = BatchResult{
			Name:    batch.Jobs[i].name(i),
			Forgery: forgery,
		}
	}

	return results, nil
}
