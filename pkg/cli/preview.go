package cli

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Musiitwa-Joel/doclair-sub001/pkg/catalog"
	"github.com/Musiitwa-Joel/doclair-sub001/pkg/config"
	"github.com/Musiitwa-Joel/doclair-sub001/pkg/pixel"
	"github.com/Musiitwa-Joel/doclair-sub001/pkg/preview"
)

// runPreview renders a tool's adjustment locally and writes the preview
// image to disk. The original file is never modified.
func runPreview(cfg config.Config, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	in := fs.String("in", "", "input image path")
	out := fs.String("out", "", "output path for the preview image (default <in>-preview.png)")
	tool := fs.String("tool", "image-sharpen-blur", "tool slug, see 'doclair tools'")
	fs.Parse(args)
	if *in == "" {
		return fmt.Errorf("preview: -in is required")
	}
	spec, ok := catalog.Lookup(*tool)
	if !ok {
		return fmt.Errorf("preview: unknown tool %q", *tool)
	}
	if !spec.LivePreview {
		return fmt.Errorf("preview: %s is processed server-side only, use 'doclair submit'", spec.Slug)
	}
	opts, err := parseAssignments(spec, fs.Args())
	if err != nil {
		return err
	}
	render, err := renderPass(spec, opts)
	if err != nil {
		return err
	}

	img, format, err := pixel.LoadFile(*in, cfg.MaxUploadBytes())
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	log.Debug().Str("format", format).
		Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).
		Msg("image loaded")

	s := preview.NewSession(preview.Config{
		Delay:   cfg.Debounce,
		MaxEdge: cfg.PreviewMaxEdge,
		OnBusy: func(busy bool) {
			if busy {
				log.Debug().Msg("rendering preview")
			}
		},
		Logger: &log,
	})
	defer s.Close()
	s.Load(img)
	s.Update(render)
	s.Flush()

	outPath := *out
	if outPath == "" {
		outPath = defaultPreviewPath(*in)
	}
	if err := pixel.SaveFile(outPath, s.Preview()); err != nil {
		return fmt.Errorf("preview: save %s: %w", outPath, err)
	}
	fmt.Printf("Preview saved to %s\n", outPath)
	return nil
}

// renderPass builds the local render pass for one of the live-preview tools.
func renderPass(spec catalog.ToolSpec, opts map[string]any) (preview.RenderFunc, error) {
	switch spec.Field {
	case "sharpenBlurOptions":
		o, err := sharpenBlurFrom(opts)
		if err != nil {
			return nil, err
		}
		return preview.SharpenBlur(o), nil
	case "colorBalanceOptions":
		o, err := colorBalanceFrom(opts)
		if err != nil {
			return nil, err
		}
		return preview.Grade(o)
	}
	return nil, fmt.Errorf("%s: no local render pass", spec.Slug)
}

// defaultPreviewPath derives "<name>-preview.png" next to the input file.
func defaultPreviewPath(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + "-preview.png"
}
