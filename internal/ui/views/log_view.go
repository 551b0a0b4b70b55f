package views

import (
	"context"
	"errors"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/Alexander-D-Karpov/omnis/internal/handlers"
	"github.com/Alexander-D-Karpov/omnis/internal/logbook"
	"github.com/Alexander-D-Karpov/omnis/internal/search"
	"github.com/Alexander-D-Karpov/omnis/internal/ui/components"
	"github.com/Alexander-D-Karpov/omnis/internal/ui/themes"
	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

const dateLayout = "2006-01-02"

var errNoEvents = errors.New("enter at least one event")

type LogView struct {
	ctx    context.Context
	store  types.LogStore
	search *search.Engine
	state  *State
	bus    *handlers.EventBus
	log    zerolog.Logger

	container    *fyne.Container
	parentWindow fyne.Window

	title       *widget.Label
	icon        *widget.Icon
	searchEntry *widget.Entry
	dateEntry   *widget.Entry
	eventsEntry *widget.Entry
	addBtn      *widget.Button
	list        *components.LogList

	query string
	now   func() time.Time
}

func NewLogView(ctx context.Context, store types.LogStore, engine *search.Engine, state *State, bus *handlers.EventBus, log zerolog.Logger) *LogView {
	lv := &LogView{
		ctx:    ctx,
		store:  store,
		search: engine,
		state:  state,
		bus:    bus,
		log:    log,
		now:    time.Now,
	}

	lv.setupWidgets()
	lv.setupLayout()
	lv.subscribe()

	return lv
}

func (lv *LogView) setupWidgets() {
	lv.title = widget.NewLabelWithStyle("Logs", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	lv.title.SizeName = theme.SizeNameHeadingText
	lv.icon = widget.NewIcon(themes.IconFor(lv.state.Prefs.Icon))

	lv.searchEntry = widget.NewEntry()
	lv.searchEntry.SetPlaceHolder("Search logs...")
	lv.searchEntry.OnChanged = func(query string) {
		lv.query = query
		lv.Refresh()
	}

	lv.dateEntry = widget.NewEntry()
	lv.dateEntry.SetPlaceHolder(dateLayout)

	lv.eventsEntry = widget.NewMultiLineEntry()
	lv.eventsEntry.SetPlaceHolder("What happened? One event per line or separated by ；")
	lv.eventsEntry.SetMinRowsVisible(2)

	lv.addBtn = widget.NewButton("Add", func() {
		if _, err := lv.AddEntry(lv.dateEntry.Text, lv.eventsEntry.Text); err != nil {
			lv.showError(err)
		}
	})
	lv.addBtn.Importance = widget.HighImportance

	lv.list = components.NewLogList(lv.state.Palette())
	lv.list.SetLoading()
}

func (lv *LogView) setupLayout() {
	header := container.NewHBox(lv.icon, lv.title)

	form := container.NewBorder(nil, nil, nil, lv.addBtn,
		container.NewVBox(lv.dateEntry, lv.eventsEntry))

	top := container.NewVBox(header, form)
	if lv.search.Enabled() {
		top.Add(lv.searchEntry)
	}

	lv.container = container.NewBorder(top, nil, nil, nil, container.NewVScroll(lv.list))
}

func (lv *LogView) subscribe() {
	lv.bus.Subscribe(handlers.EventLogsChanged, func(interface{}) { lv.Refresh() })
	lv.bus.Subscribe(handlers.EventStoreReady, func(interface{}) { lv.Refresh() })
	lv.bus.Subscribe(handlers.EventPreferencesChanged, func(interface{}) {
		lv.icon.SetResource(themes.IconFor(lv.state.Prefs.Icon))
		lv.Refresh()
	})
}

// Refresh reloads the stored entries and rebuilds the list region only.
func (lv *LogView) Refresh() {
	if !lv.store.Ready() {
		lv.list.SetLoading()
		return
	}

	logs, err := lv.store.GetAllLogs(lv.ctx)
	if err != nil {
		lv.log.Error().Err(err).Msg("load logs")
		lv.list.SetError(err)
		return
	}

	logbook.Sort(logs, lv.state.Prefs.Sort)
	logs = lv.search.Filter(logs, lv.query)
	lv.list.SetCards(logbook.Cards(logs))

	lv.log.Debug().
		Int("count", len(logs)).
		Str("sort", lv.state.Prefs.Sort.String()).
		Str("query", lv.query).
		Msg("log view refreshed")
}

// Redraw repaints with the palette of the current theme mode.
func (lv *LogView) Redraw() {
	lv.list.SetPalette(lv.state.Palette())
	lv.Refresh()
}

// AddEntry stores a new entry built from the form text. An empty date
// means today.
func (lv *LogView) AddEntry(date, eventsText string) (types.LogEntry, error) {
	events := logbook.ParseEvents(eventsText)
	if len(events) == 0 {
		return types.LogEntry{}, errNoEvents
	}

	date = strings.TrimSpace(date)
	if date == "" {
		date = lv.now().Format(dateLayout)
	}

	entry, err := lv.store.AppendLog(lv.ctx, types.LogEntry{DateStr: date, Events: events})
	if err != nil {
		lv.log.Error().Err(err).Msg("append log")
		return types.LogEntry{}, err
	}

	lv.log.Info().Int64("id", entry.ID).Int("events", len(events)).Msg("log entry added")
	lv.eventsEntry.SetText("")
	lv.bus.Publish(handlers.EventLogsChanged, entry)
	return entry, nil
}

func (lv *LogView) List() *components.LogList {
	return lv.list
}

func (lv *LogView) showError(err error) {
	if lv.parentWindow != nil {
		dialog.ShowError(err, lv.parentWindow)
	}
}

func (lv *LogView) SetParentWindow(window fyne.Window) {
	lv.parentWindow = window
}

func (lv *LogView) Container() fyne.CanvasObject {
	return lv.container
}
