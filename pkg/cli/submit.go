package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/Musiitwa-Joel/doclair-sub001/pkg/catalog"
	"github.com/Musiitwa-Joel/doclair-sub001/pkg/client"
	"github.com/Musiitwa-Joel/doclair-sub001/pkg/config"
	"github.com/Musiitwa-Joel/doclair-sub001/pkg/pixel"
)

// runSubmit uploads the untouched original plus the parameter snapshot to
// the processing API and writes the authoritative result to disk.
func runSubmit(cfg config.Config, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	in := fs.String("in", "", "input file path")
	out := fs.String("out", "", "output path for the processed file (default the server's suggested name)")
	tool := fs.String("tool", "", "tool slug, see 'doclair tools'")
	fs.Parse(args)
	if *in == "" || *tool == "" {
		return fmt.Errorf("submit: -in and -tool are required")
	}
	spec, ok := catalog.Lookup(*tool)
	if !ok {
		return fmt.Errorf("submit: unknown tool %q", *tool)
	}
	opts, err := parseAssignments(spec, fs.Args())
	if err != nil {
		return err
	}
	options, err := submitOptions(spec, opts)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if err := validateUpload(spec.Category, data, cfg.MaxUploadBytes()); err != nil {
		return fmt.Errorf("submit: %s: %w", filepath.Base(*in), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout)
	defer cancel()
	c := client.New(client.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout, Logger: &log})
	res, err := c.Submit(ctx, client.SubmitRequest{
		Tool:     spec.Slug,
		Filename: filepath.Base(*in),
		File:     data,
		Field:    spec.Field,
		Options:  options,
	})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	outPath := *out
	if outPath == "" {
		outPath = res.Filename
	}
	if err := os.WriteFile(outPath, res.Blob, 0o644); err != nil {
		return fmt.Errorf("submit: save result: %w", err)
	}

	fmt.Printf("Processed %s in %dms\n", spec.Slug, res.ProcessingTime.Milliseconds())
	if res.ProcessedDims != (client.Dimensions{}) {
		fmt.Printf("Dimensions: %dx%d -> %dx%d\n",
			res.OriginalDims.Width, res.OriginalDims.Height,
			res.ProcessedDims.Width, res.ProcessedDims.Height)
	}
	keys := make([]string, 0, len(res.Scores))
	for k := range res.Scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %s\n", k, res.Scores[k])
	}
	fmt.Printf("Saved to %s\n", outPath)
	return nil
}

// validateUpload rejects empty, oversized or unrecognized files before any
// upload or pixel work happens.
func validateUpload(category string, data []byte, maxBytes int64) error {
	if len(data) == 0 {
		return fmt.Errorf("empty file")
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", pixel.ErrTooLarge, len(data), maxBytes)
	}
	switch category {
	case "pdf":
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			return fmt.Errorf("%w: not a PDF", pixel.ErrUnsupportedFormat)
		}
	default:
		if pixel.SniffFormat(data) == "" {
			return pixel.ErrUnsupportedFormat
		}
	}
	return nil
}
