package api

import (
	"context"
	"errors"
	"net/http"
)

func getJSON[T any](ctx context.Context, c *Client, op Operation, params Params) (T, error) {
	var out T
	if err := c.Get(ctx, op, params, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func postJSON[T any](ctx context.Context, c *Client, op Operation, payload any) (T, error) {
	var out T
	if err := c.Post(ctx, op, payload, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Ping returns the raw body of the liveness endpoint
func (c *Client) Ping(ctx context.Context) (string, error) {
	return c.GetText(ctx, OpPing, nil)
}

func (c *Client) Statistics(ctx context.Context) (*Statistics, error) {
	s, err := getJSON[Statistics](ctx, c, OpStatistics, nil)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Wappalyzer returns technology name to icon URL
func (c *Client) Wappalyzer(ctx context.Context) (map[string]string, error) {
	return getJSON[map[string]string](ctx, c, OpWappalyzer, nil)
}

func (c *Client) Gallery(ctx context.Context, q GalleryQuery) (*GalleryResponse, error) {
	g, err := getJSON[GalleryResponse](ctx, c, OpGallery, q.Params())
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) List(ctx context.Context) ([]ListRow, error) {
	return getJSON[[]ListRow](ctx, c, OpList, nil)
}

func (c *Client) Detail(ctx context.Context, id string) (*Detail, error) {
	d, err := getJSON[Detail](ctx, c, OpDetail, Params{"id": id})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Technologies lists every distinct technology seen by the backend
func (c *Client) Technologies(ctx context.Context) ([]string, error) {
	t, err := getJSON[TechnologyList](ctx, c, OpTechnology, nil)
	if err != nil {
		return nil, err
	}
	return t.Technologies, nil
}

func (c *Client) Search(ctx context.Context, query string) ([]SearchHit, error) {
	return postJSON[[]SearchHit](ctx, c, OpSearch, SearchRequest{Query: query})
}

// Delete removes a result and everything attached to it
func (c *Client) Delete(ctx context.Context, id int) (string, error) {
	return postJSON[string](ctx, c, OpDelete, DeleteRequest{ID: id})
}

// Submit queues urls for probing; the backend answers before probing ends
func (c *Client) Submit(ctx context.Context, req SubmitRequest) (string, error) {
	return postJSON[string](ctx, c, OpSubmit, req)
}

// SubmitSingle probes one url synchronously and returns its result
func (c *Client) SubmitSingle(ctx context.Context, req SubmitSingleRequest) (*Detail, error) {
	d, err := postJSON[Detail](ctx, c, OpSubmitSingle, req)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// IsNotFound reports whether err is an HTTPError carrying a 404
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusNotFound
}
