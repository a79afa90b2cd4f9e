package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Musiitwa-Joel/doclair-sub001/pkg/adjust"
	"github.com/Musiitwa-Joel/doclair-sub001/pkg/catalog"
)

// parseAssignments turns name=value arguments into a JSON-ready options map
// validated against the tool's parameter specs. The map keys are the wire
// field names the processing API expects.
func parseAssignments(tool catalog.ToolSpec, args []string) (map[string]any, error) {
	opts := make(map[string]any, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%s: expected name=value, got %q", tool.Slug, arg)
		}
		p, found := tool.Param(name)
		if !found {
			return nil, fmt.Errorf("%s: unknown parameter %q", tool.Slug, name)
		}
		switch p.Type {
		case "bool":
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %s wants true or false, got %q", tool.Slug, name, raw)
			}
			opts[name] = v
		case "enum":
			valid := false
			for _, e := range p.Enum {
				if raw == e {
					valid = true
					break
				}
			}
			if !valid {
				return nil, fmt.Errorf("%s: %s must be one of %s", tool.Slug, name, strings.Join(p.Enum, ", "))
			}
			opts[name] = raw
		case "color":
			if _, err := adjust.ParseHexColor(raw); err != nil {
				return nil, fmt.Errorf("%s: %s: %w", tool.Slug, name, err)
			}
			opts[name] = raw
		default:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %s wants a number, got %q", tool.Slug, name, raw)
			}
			if err := tool.CheckRange(name, v); err != nil {
				return nil, err
			}
			opts[name] = v
		}
	}
	return opts, nil
}

// sharpenBlurFrom decodes a validated assignment map into a typed snapshot.
func sharpenBlurFrom(opts map[string]any) (adjust.SharpenBlurOptions, error) {
	var o adjust.SharpenBlurOptions
	if err := remarshal(opts, &o); err != nil {
		return o, err
	}
	if o.BlurType == "" {
		o.BlurType = adjust.BlurGaussian
	}
	return o.Clamp(), nil
}

func colorBalanceFrom(opts map[string]any) (adjust.ColorBalanceOptions, error) {
	var o adjust.ColorBalanceOptions
	if err := remarshal(opts, &o); err != nil {
		return o, err
	}
	return o.Clamp(), nil
}

// submitOptions resolves the value serialized into the tool's options field
// on submit. Tools with a typed snapshot submit it; everything else submits
// the raw assignment map.
func submitOptions(tool catalog.ToolSpec, opts map[string]any) (any, error) {
	switch tool.Field {
	case adjust.SharpenBlurOptions{}.Field():
		return sharpenBlurFrom(opts)
	case adjust.ColorBalanceOptions{}.Field():
		return colorBalanceFrom(opts)
	}
	return opts, nil
}

// remarshal moves an untyped assignment map into a JSON-tagged struct;
// catalog parameter names match the struct's wire field names.
func remarshal(opts map[string]any, dst any) error {
	raw, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
