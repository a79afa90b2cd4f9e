package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Musiitwa-Joel/doclair-sub001/pkg/adjust"
)

func TestSubmitSuccess(t *testing.T) {
	blob := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/image-sharpen-blur", r.URL.Path)

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.png", header.Filename)
		sent, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("original-bytes"), sent)

		var opts map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("sharpenBlurOptions")), &opts))
		assert.Equal(t, 40.0, opts["sharpenAmount"])

		w.Header().Set("X-Processing-Time", "1250")
		w.Header().Set("X-Original-Dimensions", "800x600")
		w.Header().Set("X-Processed-Dimensions", "1600x1200")
		w.Header().Set("X-Sharpness-Score", "87")
		w.Header().Set("Content-Disposition", `attachment; filename="photo-sharpened.png"`)
		w.Write(blob)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	res, err := c.Submit(context.Background(), SubmitRequest{
		Tool:     "image-sharpen-blur",
		Filename: "photo.png",
		File:     []byte("original-bytes"),
		Field:    "sharpenBlurOptions",
		Options:  adjust.SharpenBlurOptions{SharpenAmount: 40},
	})
	require.NoError(t, err)
	assert.Equal(t, blob, res.Blob)
	assert.Equal(t, "photo-sharpened.png", res.Filename)
	assert.Equal(t, 1250*time.Millisecond, res.ProcessingTime)
	assert.Equal(t, Dimensions{Width: 800, Height: 600}, res.OriginalDims)
	assert.Equal(t, Dimensions{Width: 1600, Height: 1200}, res.ProcessedDims)
	assert.Equal(t, "87", res.Scores["X-Sharpness-Score"])
	assert.NotContains(t, res.Scores, "X-Processing-Time")
}

func TestSubmitFilenameFallsBackToRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	res, err := c.Submit(context.Background(), SubmitRequest{
		Tool: "t", Filename: "in.png", File: []byte("x"), Field: "f", Options: struct{}{},
	})
	require.NoError(t, err)
	assert.Equal(t, "in.png", res.Filename)
}

func TestSubmitServerErrorSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "unsupported color profile"})
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	_, err := c.Submit(context.Background(), SubmitRequest{
		Tool: "image-color-balance", Filename: "a.png", File: []byte("x"), Field: "f", Options: struct{}{},
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "unsupported color profile", apiErr.Message)
	assert.Equal(t, "unsupported color profile", err.Error())
}

func TestSubmitErrorWithoutJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	_, err := c.Submit(context.Background(), SubmitRequest{
		Tool: "t", Filename: "a.png", File: []byte("x"), Field: "f", Options: struct{}{},
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestSubmitValidatesRequest(t *testing.T) {
	c := New(Config{BaseURL: "http://unused.invalid"})
	_, err := c.Submit(context.Background(), SubmitRequest{Filename: "a", File: []byte("x"), Field: "f"})
	assert.ErrorContains(t, err, "tool")
	_, err = c.Submit(context.Background(), SubmitRequest{Tool: "t", Filename: "a", Field: "f"})
	assert.ErrorContains(t, err, "empty file")
	_, err = c.Submit(context.Background(), SubmitRequest{Tool: "t", Filename: "a", File: []byte("x")})
	assert.ErrorContains(t, err, "field")
}

func TestSubmitContextCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	c := New(Config{BaseURL: srv.URL})
	_, err := c.Submit(ctx, SubmitRequest{
		Tool: "t", Filename: "a.png", File: []byte("x"), Field: "f", Options: struct{}{},
	})
	require.Error(t, err)
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}

func TestSubmitClientReusableAfterFailure(t *testing.T) {
	fail := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			fail = false
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"error": "worker crashed"})
			return
		}
		w.Write([]byte("processed"))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	req := SubmitRequest{Tool: "t", Filename: "a.png", File: []byte("x"), Field: "f", Options: struct{}{}}
	_, err := c.Submit(context.Background(), req)
	require.Error(t, err)

	res, err := c.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []byte("processed"), res.Blob)
}

func TestParseDims(t *testing.T) {
	assert.Equal(t, Dimensions{Width: 800, Height: 600}, parseDims("800x600"))
	assert.Equal(t, Dimensions{Width: 1, Height: 2}, parseDims(" 1 x 2 "))
	assert.Equal(t, Dimensions{}, parseDims(""))
	assert.Equal(t, Dimensions{}, parseDims("800"))
	assert.Equal(t, Dimensions{}, parseDims("axb"))
}
