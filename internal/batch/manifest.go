package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame    int        `json:"frame"`
	Image    string     `json:"image"`
	Rotation [3]float64 `json:"rotation"`
	Edges    int        `json:"edges"`
	Skipped  int        `json:"skipped,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// Manifest describes a rendered sequence.
type Manifest struct {
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Format  string          `json:"format"`
	DelayMS int64           `json:"delay_ms"`
	Frames  []ManifestEntry `json:"frames"`
}

// NewManifest builds the manifest for a finished run.
func NewManifest(cfg Config, results []Result) Manifest {
	m := Manifest{
		Width:   cfg.Viewport.Width,
		Height:  cfg.Viewport.Height,
		Format:  string(cfg.Format),
		DelayMS: cfg.FrameDelay.Milliseconds(),
		Frames:  make([]ManifestEntry, len(results)),
	}
	for i, r := range results {
		m.Frames[i] = ManifestEntry{
			Frame:    r.Frame,
			Image:    r.Path,
			Rotation: [3]float64{r.Rotation.X, r.Rotation.Y, r.Rotation.Z},
			Edges:    r.Edges,
			Skipped:  r.Skipped,
			Error:    r.Error,
		}
	}
	return m
}

// WriteManifest writes manifest.json to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
