package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config wires a Client to the processing API.
type Config struct {
	// BaseURL is the API root; tool slugs are appended to it.
	BaseURL string
	// Timeout bounds each submission when the caller's context carries no
	// earlier deadline. Zero means no client-side timeout.
	Timeout time.Duration
	// Logger defaults to a no-op logger when nil.
	Logger *zerolog.Logger
}

// Client submits originals to the remote processing API. The API is
// stateless per request; a Client may be reused for any number of
// submissions and performs no retries of its own.
type Client struct {
	baseURL string
	hc      *http.Client
	log     zerolog.Logger
}

func New(cfg Config) *Client {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// SubmitRequest describes one submission: the untouched original file plus
// the JSON parameter snapshot the tool page accumulated.
type SubmitRequest struct {
	// Tool is the API slug appended to the base URL.
	Tool string
	// Filename is the original file's name, sent with the upload.
	Filename string
	// File holds the original bytes. The preview buffer is never submitted.
	File []byte
	// Field names the multipart field carrying Options, for example
	// "sharpenBlurOptions".
	Field string
	// Options is JSON-encoded into Field.
	Options any
}

// Dimensions is a parsed "WxH" header value.
type Dimensions struct {
	Width  int
	Height int
}

// Result is the server's authoritative output for one submission.
type Result struct {
	// Filename is the suggested save name from Content-Disposition, or the
	// submitted name when the server offers none.
	Filename string
	// Blob is the processed file body.
	Blob []byte
	// ProcessingTime is the server-reported duration.
	ProcessingTime time.Duration
	OriginalDims   Dimensions
	ProcessedDims  Dimensions
	// Scores retains tool-specific X-* metadata headers verbatim.
	Scores map[string]string
}

// APIError is a non-2xx response. Its message is the server's error string
// verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Submit POSTs the original file and parameter snapshot to the tool's
// endpoint and parses the processed blob and metadata headers. The context
// cancels the HTTP call only; there is no streaming.
func (c *Client) Submit(ctx context.Context, req SubmitRequest) (*Result, error) {
	if req.Tool == "" {
		return nil, errors.New("submit: missing tool slug")
	}
	if len(req.File) == 0 {
		return nil, errors.New("submit: empty file")
	}
	if req.Field == "" {
		return nil, errors.New("submit: missing options field name")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", req.Filename)
	if err != nil {
		return nil, errors.Wrap(err, "submit: build form")
	}
	if _, err := fw.Write(req.File); err != nil {
		return nil, errors.Wrap(err, "submit: write file")
	}
	opts, err := json.Marshal(req.Options)
	if err != nil {
		return nil, errors.Wrap(err, "submit: encode options")
	}
	if err := mw.WriteField(req.Field, string(opts)); err != nil {
		return nil, errors.Wrap(err, "submit: write options")
	}
	if err := mw.Close(); err != nil {
		return nil, errors.Wrap(err, "submit: finish form")
	}

	url := c.baseURL + "/" + strings.TrimLeft(req.Tool, "/")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, errors.Wrap(err, "submit: build request")
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	c.log.Debug().Str("tool", req.Tool).Str("filename", req.Filename).
		Int("bytes", len(req.File)).Msg("submitting to processing API")
	start := time.Now()
	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "submit: "+req.Tool)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, c.apiError(resp)
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "submit: read response")
	}
	res := c.parseResult(resp.Header, blob)
	if res.Filename == "" {
		res.Filename = req.Filename
	}
	c.log.Debug().Str("tool", req.Tool).
		Dur("roundTrip", time.Since(start)).
		Dur("serverTime", res.ProcessingTime).
		Int("blobBytes", len(res.Blob)).Msg("submission processed")
	return res, nil
}

func (c *Client) apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var payload struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	if msg == "" {
		msg = resp.Status
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

func (c *Client) parseResult(h http.Header, blob []byte) *Result {
	res := &Result{Blob: blob, Scores: map[string]string{}}
	if ms, err := strconv.Atoi(h.Get("X-Processing-Time")); err == nil {
		res.ProcessingTime = time.Duration(ms) * time.Millisecond
	}
	res.OriginalDims = parseDims(h.Get("X-Original-Dimensions"))
	res.ProcessedDims = parseDims(h.Get("X-Processed-Dimensions"))
	if cd := h.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			res.Filename = params["filename"]
		}
	}
	known := map[string]bool{
		"X-Processing-Time":      true,
		"X-Original-Dimensions":  true,
		"X-Processed-Dimensions": true,
	}
	for key, vals := range h {
		if strings.HasPrefix(key, "X-") && !known[key] && len(vals) > 0 {
			res.Scores[key] = vals[0]
		}
	}
	return res
}

func parseDims(s string) Dimensions {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return Dimensions{}
	}
	width, err1 := strconv.Atoi(strings.TrimSpace(w))
	height, err2 := strconv.Atoi(strings.TrimSpace(h))
	if err1 != nil || err2 != nil {
		return Dimensions{}
	}
	return Dimensions{Width: width, Height: height}
}
