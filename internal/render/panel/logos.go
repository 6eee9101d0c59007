package panel

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sync"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/preston-bernstein/sports-ticker/internal/domain/leagues"
	"github.com/preston-bernstein/sports-ticker/internal/logging"
)

// MarkSource supplies team logos sized for the panel.
type MarkSource interface {
	// Mark returns the logo for team scaled to size, or nil when there is none.
	Mark(league leagues.Code, team string, size int) image.Image
}

type logoKey struct {
	league leagues.Code
	team   string
	size   int
}

// LogoStore loads <root>/<league logo dir>/<TEAM>.bmp files and caches the
// scaled results, including misses.
type LogoStore struct {
	fsys   fs.FS
	logger *slog.Logger

	mu    sync.Mutex
	cache map[logoKey]image.Image
}

// NewLogoStore reads logos under root. An empty root disables logos.
func NewLogoStore(root string, logger *slog.Logger) *LogoStore {
	var fsys fs.FS
	if root != "" {
		fsys = os.DirFS(root)
	}
	return NewLogoStoreFS(fsys, logger)
}

// NewLogoStoreFS reads logos from fsys.
func NewLogoStoreFS(fsys fs.FS, logger *slog.Logger) *LogoStore {
	return &LogoStore{fsys: fsys, logger: logger, cache: make(map[logoKey]image.Image)}
}

// Mark implements MarkSource.
func (s *LogoStore) Mark(code leagues.Code, team string, size int) image.Image {
	if s == nil || s.fsys == nil || team == "" {
		return nil
	}
	key := logoKey{league: code, team: team, size: size}

	s.mu.Lock()
	defer s.mu.Unlock()
	if img, ok := s.cache[key]; ok {
		return img
	}
	img, err := s.load(code, team, size)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Warn(s.logger, "logo load failed",
			slog.String(logging.FieldLeague, string(code)),
			slog.String("team", team),
			"error", err,
		)
	}
	s.cache[key] = img
	return img
}

func (s *LogoStore) load(code leagues.Code, team string, size int) (image.Image, error) {
	league, ok := leagues.Lookup(code)
	if !ok {
		return nil, fs.ErrNotExist
	}
	f, err := s.fsys.Open(path.Join(league.LogoDir, team+".bmp"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := bmp.Decode(f)
	if err != nil {
		return nil, err
	}
	var flat *image.RGBA
	if p, ok := src.(*image.Paletted); ok {
		flat = brighten(p)
	} else {
		flat = image.NewRGBA(src.Bounds())
		xdraw.Draw(flat, flat.Bounds(), src, src.Bounds().Min, xdraw.Src)
	}

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), flat, flat.Bounds(), xdraw.Src, nil)
	return out, nil
}

// brighten flattens a paletted logo onto black. The background is the
// palette index most common among the four corners; dark logos are scaled up
// so they read on an LED panel.
func brighten(p *image.Paletted) *image.RGBA {
	b := p.Bounds()
	bg := backgroundIndex(p)

	maxChannel := uint8(0)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			idx := p.ColorIndexAt(x, y)
			if idx == bg {
				continue
			}
			c := rgba(p.Palette[idx])
			maxChannel = max(maxChannel, c.R, c.G, c.B)
		}
	}
	scale := brightnessScale(maxChannel)

	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			idx := p.ColorIndexAt(x, y)
			if idx == bg {
				out.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
				continue
			}
			c := rgba(p.Palette[idx])
			out.SetRGBA(x, y, color.RGBA{scaleChannel(c.R, scale), scaleChannel(c.G, scale), scaleChannel(c.B, scale), 255})
		}
	}
	return out
}

func backgroundIndex(p *image.Paletted) uint8 {
	b := p.Bounds()
	corners := []uint8{
		p.ColorIndexAt(b.Min.X, b.Min.Y),
		p.ColorIndexAt(b.Max.X-1, b.Min.Y),
		p.ColorIndexAt(b.Min.X, b.Max.Y-1),
		p.ColorIndexAt(b.Max.X-1, b.Max.Y-1),
	}
	best, bestCount := corners[0], 0
	for _, c := range corners {
		n := 0
		for _, o := range corners {
			if o == c {
				n++
			}
		}
		if n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

func brightnessScale(maxChannel uint8) float64 {
	switch {
	case maxChannel == 0:
		return 1
	case maxChannel < 80:
		return 200 / float64(maxChannel)
	case maxChannel < 150:
		return 255 / float64(maxChannel)
	default:
		return 1
	}
}

func scaleChannel(v uint8, scale float64) uint8 {
	return uint8(min(255, int(float64(v)*scale)))
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
