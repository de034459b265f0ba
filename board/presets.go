package board

import (
	"encoding/json"
	"fmt"
	"io"
)

// Preset serialization for BoardOptions. The two sum types are encoded
// behind a "kind" discriminator so saved presets stay editable by
// hand.

type optionsJSON struct {
	Difficulty  Difficulty   `json:"difficulty"`
	Position    positionJSON `json:"position"`
	TileSize    tileSizeJSON `json:"tile_size"`
	TilePadding float64      `json:"tile_padding"`
	SafeStart   bool         `json:"safe_start"`
}

type tileSizeJSON struct {
	Kind string  `json:"kind"`
	Size float64 `json:"size,omitempty"`
	Min  float64 `json:"min,omitempty"`
	Max  float64 `json:"max,omitempty"`
}

type positionJSON struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
}

// Save writes the options as a JSON preset readable by LoadOptions.
func (o BoardOptions) Save(w io.Writer) error {
	dto := optionsJSON{
		Difficulty:  o.Difficulty,
		TilePadding: o.TilePadding,
		SafeStart:   o.SafeStart,
	}

	switch s := o.TileSize.(type) {
	case FixedTileSize:
		dto.TileSize = tileSizeJSON{Kind: "fixed", Size: float64(s)}
	case AdaptiveTileSize:
		dto.TileSize = tileSizeJSON{Kind: "adaptive", Min: s.Min, Max: s.Max}
	default:
		return fmt.Errorf("board: cannot save tile size %T", o.TileSize)
	}

	switch p := o.Position.(type) {
	case CenteredPosition:
		dto.Position = positionJSON{Kind: "centered", X: p.OffsetX, Y: p.OffsetY}
	case CustomPosition:
		dto.Position = positionJSON{Kind: "custom", X: p.X, Y: p.Y}
	default:
		return fmt.Errorf("board: cannot save board position %T", o.Position)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto)
}

// LoadOptions reads a JSON preset written by Save.
func LoadOptions(r io.Reader) (BoardOptions, error) {
	var dto optionsJSON
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return BoardOptions{}, fmt.Errorf("board: decoding options preset: %w", err)
	}

	o := BoardOptions{
		Difficulty:  dto.Difficulty,
		TilePadding: dto.TilePadding,
		SafeStart:   dto.SafeStart,
	}

	switch dto.TileSize.Kind {
	case "fixed":
		o.TileSize = FixedTileSize(dto.TileSize.Size)
	case "adaptive":
		o.TileSize = AdaptiveTileSize{Min: dto.TileSize.Min, Max: dto.TileSize.Max}
	default:
		return BoardOptions{}, fmt.Errorf("board: unknown tile size kind %q", dto.TileSize.Kind)
	}

	switch dto.Position.Kind {
	case "centered":
		o.Position = CenteredPosition{OffsetX: dto.Position.X, OffsetY: dto.Position.Y}
	case "custom":
		o.Position = CustomPosition{X: dto.Position.X, Y: dto.Position.Y}
	default:
		return BoardOptions{}, fmt.Errorf("board: unknown board position kind %q", dto.Position.Kind)
	}

	return o, nil
}
