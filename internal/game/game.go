package game

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/field"
	"github.com/iburimskiy/portfolio-backdrop/internal/host"
)

// Ambience is the optional audio track driving the pulse energy.
type Ambience interface {
	Level() float64
	TogglePause() bool
	Playing() bool
}

// Saver writes the résumé somewhere the user picks.
type Saver interface {
	Save(ctx context.Context) (string, error)
}

var (
	navColor      = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	navHover      = color.RGBA{R: 190, G: 242, B: 100, A: 255}
	navBorder     = color.RGBA{R: 55, G: 65, B: 81, A: 255}
	cardColor     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	sectionKeys   = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	downloadLimit = 30 * time.Second
)

type Game struct {
	surface *Surface
	stage   *host.Stage

	ambience Ambience
	resume   Saver

	navHovered int
	status     string
	lastErr    error
}

// NewGame mounts the configured section on a surface of the configured size.
// ambience may be nil.
func NewGame(cfg config.Config, dark bool, ambience Ambience, resume Saver) *Game {
	surface := NewSurface(cfg.Width, cfg.Height)
	stage := host.NewStage(surface, host.DefaultSections(), rand.New(rand.NewSource(time.Now().UnixNano())))
	stage.SetTheme(field.Theme{Dark: dark})
	stage.Resize(cfg.Width, cfg.Height)
	stage.Show(cfg.SectionIndex())

	return &Game{
		surface:    surface,
		stage:      stage,
		ambience:   ambience,
		resume:     resume,
		navHovered: -1,
	}
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	g.stage.Pointer(float64(mouseX), float64(mouseY))

	g.navHovered = -1
	for i := range g.stage.Sections() {
		if hovered(navItem(i), mouseX, mouseY) {
			g.navHovered = i
		}
	}
	if g.navHovered >= 0 && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.show(g.navHovered)
	}

	for i, k := range sectionKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.show(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.stage.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		t := g.stage.ToggleTheme()
		log.Printf("theme: dark=%v", t.Dark)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.downloadResume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.ambience != nil {
		g.ambience.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.stage.Close()
		return ebiten.Termination
	}

	if g.ambience != nil {
		g.stage.SetEnergy(g.ambience.Level())
	}
	g.stage.Tick()
	return nil
}

func (g *Game) show(i int) {
	if i == g.stage.Active() {
		return
	}
	g.stage.Show(i)
	g.lastErr = nil
	g.status = ""
}

func (g *Game) downloadResume() {
	ctx, cancel := context.WithTimeout(context.Background(), downloadLimit)
	defer cancel()

	path, err := g.resume.Save(ctx)
	switch {
	case err != nil:
		log.Printf("résumé download failed: %v", err)
		g.lastErr = err
	case path == "":
		g.status = "Download cancelled"
	default:
		log.Printf("résumé saved to %s", path)
		g.lastErr = nil
		g.status = "Résumé saved to " + path
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	theme := g.stage.Theme()
	screen.Fill(theme.Background())

	if img := g.surface.Image(); img != nil && g.stage.Live() {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(g.stage.Section().Opacity))
		screen.DrawImage(img, op)
	}

	g.drawCard(screen)
	g.drawNav(screen)
	g.drawStatus(screen)
}

func (g *Game) drawNav(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, w, config.NavBarHeight, fade(navColor, 0.85), false)
	vector.StrokeLine(screen, 0, config.NavBarHeight, w, config.NavBarHeight, 1, navBorder, false)
	ebitenutil.DebugPrintAt(screen, "Portfolio.", 12, 9)

	for i, sec := range g.stage.Sections() {
		r := navItem(i)
		switch {
		case i == g.stage.Active():
			vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fade(navHover, 0.25), false)
			vector.StrokeLine(screen, float32(r.Min.X), float32(r.Max.Y), float32(r.Max.X), float32(r.Max.Y), 2, navHover, false)
		case i == g.navHovered:
			vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fade(navHover, 0.1), false)
		}
		label := fmt.Sprintf("%d %s", i+1, sec.Title)
		ebitenutil.DebugPrintAt(screen, label, r.Min.X+8, r.Min.Y+(r.Dy()-16)/2+3)
	}

	mode := "light"
	if g.stage.Theme().Dark {
		mode = "dark"
	}
	ebitenutil.DebugPrintAt(screen, "T "+mode, int(w)-60, 9)
}

func navItem(i int) image.Rectangle {
	x := config.NavItemX + i*config.NavItemWidth
	return image.Rect(x, config.NavItemPad/2, x+config.NavItemWidth-config.NavItemPad, config.NavBarHeight-config.NavItemPad/2)
}

func (g *Game) drawCard(screen *ebiten.Image) {
	sec := g.stage.Section()
	lines := append([]string{sec.Title, ""}, sec.Lines...)

	b := screen.Bounds()
	h := len(lines)*config.LineHeight + 2*config.CardPadding
	x := (b.Dx() - config.CardWidth) / 2
	y := (b.Dy() - h) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), config.CardWidth, float32(h), fade(cardColor, 0.55), false)
	vector.StrokeRect(screen, float32(x), float32(y), config.CardWidth, float32(h), 1, fade(navHover, 0.6), false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+config.CardPadding, y+config.CardPadding+i*config.LineHeight)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := "1-4/Tab: sections, T: theme, R: résumé, Esc/Q: quit"
	if g.ambience != nil {
		if g.ambience.Playing() {
			status += " | Space: pause ambience"
		} else {
			status += " | Space: play ambience"
		}
	}
	if g.status != "" {
		status += " | " + g.status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, float32(b.Dy()-24), float32(b.Dx()), 24, fade(navColor, 0.7), false)
	ebitenutil.DebugPrintAt(screen, status, 12, b.Dy()-20)
}

// Layout follows the window so the surface always matches the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface.Resize(outsideWidth, outsideHeight)
	g.stage.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
