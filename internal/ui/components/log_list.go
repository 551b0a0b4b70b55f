package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Alexander-D-Karpov/omnis/internal/logbook"
	"github.com/Alexander-D-Karpov/omnis/internal/ui/themes"
)

const (
	EmptyText   = logbook.EmptyText
	LoadingText = "Loading…"
)

// LogList is the scrollable region of the log tab. Rows are rebuilt on
// every SetCards / SetError / SetLoading call; nothing else on the page is
// touched.
type LogList struct {
	widget.BaseWidget

	cards   []logbook.Card
	err     error
	loading bool
	palette themes.Palette

	root *fyne.Container
}

func NewLogList(palette themes.Palette) *LogList {
	ll := &LogList{
		palette: palette,
		root:    container.NewVBox(),
	}
	ll.ExtendBaseWidget(ll)
	ll.rebuild()
	return ll
}

func (ll *LogList) CreateRenderer() fyne.WidgetRenderer {
	return &logListRenderer{ll: ll}
}

func (ll *LogList) SetCards(cards []logbook.Card) {
	ll.cards = cards
	ll.err = nil
	ll.loading = false
	ll.rebuild()
}

func (ll *LogList) SetError(err error) {
	ll.cards = nil
	ll.err = err
	ll.loading = false
	ll.rebuild()
}

func (ll *LogList) SetLoading() {
	ll.cards = nil
	ll.err = nil
	ll.loading = true
	ll.rebuild()
}

func (ll *LogList) SetPalette(p themes.Palette) {
	ll.palette = p
	ll.rebuild()
}

// Rows returns the objects currently shown, placeholder rows included.
func (ll *LogList) Rows() []fyne.CanvasObject {
	return ll.root.Objects
}

// Cards returns only the entry cards currently shown.
func (ll *LogList) Cards() []*LogCard {
	var out []*LogCard
	for _, obj := range ll.root.Objects {
		if card, ok := obj.(*LogCard); ok {
			out = append(out, card)
		}
	}
	return out
}

func (ll *LogList) rebuild() {
	ll.root.Objects = nil

	switch {
	case ll.err != nil:
		ll.root.Add(ll.mutedRow(fmt.Sprintf("Stored logs could not be read: %v", ll.err)))
	case ll.loading:
		ll.root.Add(ll.mutedRow(LoadingText))
	case len(ll.cards) == 0:
		ll.root.Add(ll.mutedRow(EmptyText))
	default:
		for _, card := range ll.cards {
			ll.root.Add(NewLogCard(card, ll.palette))
		}
	}

	ll.root.Refresh()
	ll.Refresh()
}

func (ll *LogList) mutedRow(text string) *canvas.Text {
	return canvas.NewText(text, ll.palette.SubText)
}

type logListRenderer struct {
	ll *LogList
}

func (r *logListRenderer) Layout(size fyne.Size) { r.ll.root.Resize(size) }
func (r *logListRenderer) MinSize() fyne.Size    { return r.ll.root.MinSize() }
func (r *logListRenderer) Destroy()              {}
func (r *logListRenderer) Refresh()              { r.ll.root.Refresh() }
func (r *logListRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.ll.root}
}
