package location

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// IconKind tags which variant an Icon holds.
type IconKind int

const (
	IconEmoji IconKind = iota
	IconAsset
)

// Icon is either a plain emoji or an image asset with a text fallback.
type Icon struct {
	Kind IconKind
	Text string // Emoji, or the fallback for an asset
	Path string // Asset path; empty for emoji icons
}

// Emoji builds an emoji icon.
func Emoji(text string) Icon {
	return Icon{Kind: IconEmoji, Text: text}
}

// Asset builds an image icon that falls back to text when the image is unavailable.
func Asset(path, fallback string) Icon {
	return Icon{Kind: IconAsset, Path: path, Text: fallback}
}

// IsZero reports whether no icon was configured.
func (i Icon) IsZero() bool {
	return i.Text == "" && i.Path == ""
}

// IconRender is the concrete instruction a renderer follows: draw the image at
// Path, or print Glyph. Exactly one of them is set.
type IconRender struct {
	Glyph string
	Path  string
}

// Resolve picks the render instruction. available reports whether an asset
// path can be drawn; a nil func means no assets can.
func (i Icon) Resolve(available func(path string) bool) IconRender {
	if i.Kind == IconAsset && i.Path != "" && available != nil && available(i.Path) {
		return IconRender{Path: i.Path}
	}
	return IconRender{Glyph: i.Text}
}

type assetIcon struct {
	Path     string `json:"path" yaml:"path"`
	Fallback string `json:"fallback" yaml:"fallback"`
}

// MarshalJSON writes emoji icons as strings and assets as objects.
func (i Icon) MarshalJSON() ([]byte, error) {
	if i.Kind == IconAsset {
		return json.Marshal(assetIcon{Path: i.Path, Fallback: i.Text})
	}
	return json.Marshal(i.Text)
}

func (i *Icon) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*i = Emoji(text)
		return nil
	}
	var asset assetIcon
	if err := json.Unmarshal(data, &asset); err != nil {
		return fmt.Errorf("icon must be a string or {path, fallback}: %w", err)
	}
	*i = Asset(asset.Path, asset.Fallback)
	return nil
}

func (i Icon) MarshalYAML() (interface{}, error) {
	if i.Kind == IconAsset {
		return assetIcon{Path: i.Path, Fallback: i.Text}, nil
	}
	return i.Text, nil
}

func (i *Icon) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*i = Emoji(value.Value)
		return nil
	}
	var asset assetIcon
	if err := value.Decode(&asset); err != nil {
		return fmt.Errorf("icon must be a string or {path, fallback}: %w", err)
	}
	*i = Asset(asset.Path, asset.Fallback)
	return nil
}
