package main

import (
	"flag"
	"log"
	"os"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/lukaszgryglicki/waveshade/internal/waveshade"
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var (
	FlagConfig    string
	FlagComposite bool
	FlagScale     int
)

func init() {
	flag.StringVar(&FlagConfig, "config", "configs/config.json", "shader config file")
	flag.BoolVar(&FlagComposite, "composite", false, "show the lit crossfade instead of the final directional sample")
	flag.IntVar(&FlagScale, "scale", 2, "window scale over the render resolution")
}

// App drives the pixel shader in real time: Update advances the clock,
// Draw shades every pixel into a reusable buffer and uploads it.
type App struct {
	frame *waveshade.Frame
	acc   *waveshade.Accumulator
	gamma float64
	start time.Time
	pix   []byte
}

func NewApp(cfg *waveshade.Config) (*App, error) {
	frame, err := cfg.BuildFrame()
	if err != nil {
		return nil, err
	}
	return &App{
		frame: frame,
		acc:   waveshade.NewAccumulator(cfg.Width, cfg.Height),
		gamma: cfg.Gamma,
		start: time.Now(),
	}, nil
}

func (a *App) Update() error {
	a.frame.Time = time.Since(a.start).Seconds()
	return nil
}

func (a *App) Draw(screen *eb.Image) {
	a.acc.Reset()
	if FlagComposite {
		waveshade.RenderComposite(a.frame, a.acc)
	} else {
		waveshade.Render(a.frame, a.acc)
	}
	img := a.acc.ToNRGBA(a.gamma)
	if a.pix == nil {
		a.pix = make([]byte, len(img.Pix))
	}
	copy(a.pix, img.Pix)
	screen.WritePixels(a.pix)
}

func (a *App) Layout(int, int) (int, int) {
	return a.acc.W, a.acc.H
}

func main() {
	flag.Parse()

	waveshade.Debug = os.Getenv("DEBUG") != ""

	cfg, err := waveshade.LoadConfig(FlagConfig)
	if err != nil {
		ErrorLogger.Fatal(err)
	}
	app, err := NewApp(cfg)
	if err != nil {
		ErrorLogger.Fatal(err)
	}

	scale := FlagScale
	if scale < 1 {
		scale = 1
	}
	eb.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	eb.SetWindowTitle("waveshade")
	InfoLogger.Printf("rendering %dx%d at scale %d", cfg.Width, cfg.Height, scale)

	if err := eb.RunGame(app); err != nil {
		ErrorLogger.Fatal(err)
	}
}
