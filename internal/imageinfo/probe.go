package imageinfo

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Info describes a source image without decoding its pixels.
type Info struct {
	Format  string
	Width   int
	Height  int
	Size    int64
	Taken   time.Time
	Camera  string
	HasEXIF bool
}

// Probe reads the image header and, for formats carrying EXIF, the capture time and camera model.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return Info{}, fmt.Errorf("stat image: %w", err)
	}

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("read image header: %w", err)
	}

	info := Info{
		Format: strings.ToUpper(format),
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   stat.Size(),
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return info, nil
	}
	x, err := exif.Decode(f)
	if err != nil {
		return info, nil
	}
	info.HasEXIF = true
	if tm, err := x.DateTime(); err == nil {
		info.Taken = tm
	}
	if tag, err := x.Get(exif.Model); err == nil {
		if model, err := tag.StringVal(); err == nil {
			info.Camera = strings.TrimSpace(model)
		}
	}
	return info, nil
}

// Summary renders info as a short multi-line description.
func (i Info) Summary() string {
	lines := []string{
		fmt.Sprintf("%s, %dx%d, %s", i.Format, i.Width, i.Height, formatBytes(i.Size)),
	}
	if !i.Taken.IsZero() {
		lines = append(lines, fmt.Sprintf("Taken: %s", i.Taken.Format("2006-01-02 15:04:05")))
	}
	if i.Camera != "" {
		lines = append(lines, fmt.Sprintf("Camera: %s", i.Camera))
	}
	return strings.Join(lines, "\n")
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	value := float64(bytes)
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}
	idx := 0
	for value >= unit && idx < len(units)-1 {
		value /= unit
		idx++
	}
	return fmt.Sprintf("%.1f %s", value, units[idx])
}
