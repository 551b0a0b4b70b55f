package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/Alexander-D-Karpov/omnis/internal/logbook"
	"github.com/Alexander-D-Karpov/omnis/internal/ui/themes"
)

const (
	cardPadding = 12
	cardRadius  = 12
)

// LogCard shows one entry: the date in the accent color above the joined
// events.
type LogCard struct {
	widget.BaseWidget

	card       logbook.Card
	date       *canvas.Text
	body       *widget.Label
	background *canvas.Rectangle
	content    fyne.CanvasObject
}

func NewLogCard(card logbook.Card, palette themes.Palette) *LogCard {
	c := &LogCard{card: card}

	c.date = canvas.NewText(card.Date, palette.Blue)
	c.date.TextStyle = fyne.TextStyle{Bold: true}

	c.body = widget.NewLabel(card.Body)
	c.body.Wrapping = fyne.TextWrapWord

	c.background = canvas.NewRectangle(palette.Card)
	c.background.CornerRadius = cardRadius
	c.background.StrokeColor = palette.Shadow
	c.background.StrokeWidth = 1

	c.content = container.NewStack(
		c.background,
		container.New(
			layout.NewCustomPaddedLayout(cardPadding, cardPadding, cardPadding, cardPadding),
			container.NewVBox(c.date, c.body),
		),
	)

	c.ExtendBaseWidget(c)
	return c
}

func (c *LogCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.content)
}

func (c *LogCard) Entry() logbook.Card { return c.card }
func (c *LogCard) DateText() string    { return c.date.Text }
func (c *LogCard) BodyText() string    { return c.body.Text }
