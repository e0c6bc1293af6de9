package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/dateparse"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/view"
	"github.com/idilsaglam/todolist/internal/watch"
)

// listItem adapts *model.Item to bubbles/list.Item
type listItem struct {
	it    *model.Item
	today model.Date
}

func (i listItem) Title() string       { return i.it.ShortDescription }
func (i listItem) Description() string { return i.it.Deadline.Format(model.DisplayLayout) }
func (i listItem) FilterValue() string { return i.it.ShortDescription }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(listItem)
	if !ok {
		return
	}
	due := deadlineStyle(li.it.Urgency(li.today)).Render(li.it.Deadline.Format("02 Jan 2006"))
	prefix := "  "
	text := li.it.ShortDescription
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
		text = titleStyle.Render(text)
	}
	fmt.Fprintf(w, "%s%s  %s", prefix, due, text)
}

type uiMode int

const (
	modeBrowse uiMode = iota
	modeForm
	modeConfirmDelete
)

const (
	fieldDesc = iota
	fieldDetails
	fieldDue
	fieldCount
)

var fieldLabels = [fieldCount]string{"Description", "Details", "Deadline"}

// itemForm backs both the add and the edit dialog.
type itemForm struct {
	target *model.Item // nil when adding
	inputs []textinput.Model
	focus  int
	err    string
}

func newItemForm(target *model.Item) itemForm {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 200
		inputs[i] = ti
	}
	inputs[fieldDesc].Placeholder = "What needs doing?"
	inputs[fieldDetails].Placeholder = "Optional details"
	inputs[fieldDetails].CharLimit = 1000
	inputs[fieldDue].Placeholder = "today, tomorrow, fri, +3d, 2024-03-05"
	if target != nil {
		inputs[fieldDesc].SetValue(target.ShortDescription)
		inputs[fieldDetails].SetValue(target.Details)
		inputs[fieldDue].SetValue(target.Deadline.Format(model.ISOLayout))
	}
	f := itemForm{target: target, inputs: inputs}
	f.setFocus(fieldDesc)
	return f
}

func (f *itemForm) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
			f.inputs[j].CursorEnd()
		} else {
			f.inputs[j].Blur()
		}
	}
}

type keyMap struct {
	add, edit, del, filter, reload, save, quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		del:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		filter: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "due today")),
		reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// messages delivered by the file watcher
type fileChangedMsg struct{}
type watchErrMsg struct{ err error }

// Model is the Bubble Tea model for the interactive list.
type Model struct {
	svc  *app.Service
	list list.Model
	keys keyMap

	mode   uiMode
	form   itemForm
	doomed *model.Item // awaiting delete confirmation

	status    string
	statusErr bool

	width, height int
}

func NewModel(svc *app.Service) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	// d deletes here, it is not a page key
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")
	l.KeyMap.Quit.SetEnabled(false)

	km := newKeyMap()
	extra := func() []key.Binding {
		return []key.Binding{km.add, km.edit, km.del, km.filter, km.reload, km.save, km.quit}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := Model{svc: svc, list: l, keys: km, width: 80, height: 24}
	m.refresh(nil)
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case fileChangedMsg:
		return m.onFileChanged()
	case watchErrMsg:
		m.setError("watch: " + msg.err.Error())
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m.updateBrowse(msg)
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, m.keys.quit):
			return m, tea.Quit
		case key.Matches(km, m.keys.add):
			m.form = newItemForm(nil)
			m.mode = modeForm
			m.resize()
			return m, textinput.Blink
		case key.Matches(km, m.keys.edit):
			if sel := m.selected(); sel != nil {
				m.form = newItemForm(sel)
				m.mode = modeForm
				m.resize()
				return m, textinput.Blink
			}
			return m, nil
		case key.Matches(km, m.keys.del):
			if sel := m.selected(); sel != nil {
				m.doomed = sel
				m.mode = modeConfirmDelete
			}
			return m, nil
		case key.Matches(km, m.keys.filter):
			sel := m.selected()
			mode := m.svc.ToggleFilter()
			cmd := m.refresh(sel)
			if mode == view.ShowDueToday {
				m.setInfo("showing items due today")
			} else {
				m.setInfo("showing all items")
			}
			return m, cmd
		case key.Matches(km, m.keys.reload):
			if err := m.svc.Reload(); err != nil {
				m.setError(err.Error())
				return m, nil
			}
			m.setInfo("reloaded")
			return m, m.refresh(nil)
		case key.Matches(km, m.keys.save):
			if err := m.svc.Persist(); err != nil {
				m.setError(err.Error())
			} else {
				m.setInfo("saved")
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.mode = modeBrowse
			m.resize()
			return m, nil
		case "tab", "down":
			m.form.setFocus((m.form.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.form.setFocus((m.form.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			return m.submitForm()
		}
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	desc := m.form.inputs[fieldDesc].Value()
	details := m.form.inputs[fieldDetails].Value()

	var due model.Date
	if s := strings.TrimSpace(m.form.inputs[fieldDue].Value()); s != "" {
		d, err := dateparse.Parse(s, m.svc.Today())
		if err != nil {
			m.form.err = "deadline: " + err.Error()
			m.form.setFocus(fieldDue)
			return m, nil
		}
		due = d
	}

	var (
		it  = m.form.target
		err error
	)
	if it == nil {
		it, err = m.svc.CreateItem(desc, details, due)
	} else {
		err = m.svc.EditItem(it, desc, details, due)
	}

	// invalid input keeps the form open so the user can retry
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		m.form.err = ve.Error()
		for i, label := range fieldLabels {
			if strings.EqualFold(label, ve.Field) {
				m.form.setFocus(i)
			}
		}
		return m, nil
	}

	editing := m.form.target != nil
	m.mode = modeBrowse
	m.resize()
	switch {
	case err != nil:
		m.setError(err.Error())
	case editing:
		m.setInfo("updated")
	default:
		m.setInfo("added")
	}
	if editing {
		// an edited deadline may fall outside today's filter
		m.svc.SetFilterMode(view.ShowAll)
	}
	return m, m.refresh(it)
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	doomed := m.doomed
	m.doomed = nil
	m.mode = modeBrowse
	if s := km.String(); s != "y" && s != "Y" {
		m.setInfo("delete cancelled")
		return m, nil
	}
	if err := m.svc.DeleteItem(doomed); err != nil {
		m.setError(err.Error())
		return m, nil
	}
	m.setInfo("deleted")
	return m, m.refresh(nil)
}

func (m Model) onFileChanged() (tea.Model, tea.Cmd) {
	if m.mode != modeBrowse || m.svc.Dirty() {
		m.setError("data file changed on disk; press r to reload")
		return m, nil
	}
	if err := m.svc.Reload(); err != nil {
		m.setError(err.Error())
		return m, nil
	}
	return m, m.refresh(nil)
}

func (m *Model) selected() *model.Item {
	if li, ok := m.list.SelectedItem().(listItem); ok {
		return li.it
	}
	return nil
}

// refresh pulls the visible items from the service. When keep is still
// visible it stays selected; when it is hidden the first row is selected;
// with no keep the cursor stays at the same row.
func (m *Model) refresh(keep *model.Item) tea.Cmd {
	today := m.svc.Today()
	items := m.svc.ListVisibleItems()
	rows := make([]list.Item, len(items))
	for i, it := range items {
		rows[i] = listItem{it: it, today: today}
	}
	prev := m.list.Index()
	cmd := m.list.SetItems(rows)
	m.list.Title = m.header(items, today)

	switch idx := m.svc.VisibleIndex(keep); {
	case keep != nil && idx >= 0:
		m.list.Select(idx)
	case keep != nil:
		m.list.Select(0)
	case prev < len(rows):
		m.list.Select(prev)
	case len(rows) > 0:
		m.list.Select(len(rows) - 1)
	}
	return cmd
}

func (m *Model) header(items []*model.Item, today model.Date) string {
	due := 0
	for _, it := range m.svc.Store().Items() {
		if it.DueOn(today) {
			due++
		}
	}
	filter := "all"
	if m.svc.FilterMode() == view.ShowDueToday {
		filter = "due today"
	}
	return fmt.Sprintf("%s   %s  %s %d  %s %d",
		titleStyle.Render("Todos"),
		mutedStyle.Render("["+filter+"]"),
		overdueStyle.Render("⚑"), due,
		accentStyle.Render("Shown"), len(items),
	)
}

func (m *Model) setInfo(s string)  { m.status, m.statusErr = s, false }
func (m *Model) setError(s string) { m.status, m.statusErr = s, true }

func (m *Model) resize() {
	// frame (2) + details pane (3) + status (1)
	reserved := 6
	switch m.mode {
	case modeForm:
		reserved += 8
	case modeConfirmDelete:
		reserved += 3
	}
	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.list.SetSize(w, h)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.detailsView())

	switch m.mode {
	case modeForm:
		b.WriteString("\n")
		b.WriteString(m.formView())
	case modeConfirmDelete:
		if m.doomed != nil {
			box := frameStyle.Render(fmt.Sprintf("Delete item: %s\n%s",
				titleStyle.Render(m.doomed.ShortDescription),
				helpStyle.Render("Are you sure? y to confirm, any other key to back out")))
			b.WriteString("\n" + box)
		}
	}

	b.WriteString("\n")
	switch {
	case m.status == "":
	case m.statusErr:
		b.WriteString(errorStyle.Render("✖ " + m.status))
	default:
		b.WriteString(successStyle.Render("✔ " + m.status))
	}
	return panelString(b.String())
}

func (m Model) detailsView() string {
	sel := m.selected()
	if sel == nil {
		return mutedStyle.Render("No item selected") + "\n"
	}
	details := sel.Details
	if details == "" {
		details = mutedStyle.Render("(no details)")
	}
	u := sel.Urgency(m.svc.Today())
	due := deadlineStyle(u).Render(sel.Deadline.Format(model.DisplayLayout))
	if u != model.UrgencyLater {
		due += " " + mutedStyle.Render("("+u.String()+")")
	}
	return labelStyle.Render("Details") + details + "\n" + labelStyle.Render("Due") + due
}

func (m Model) formView() string {
	title := "Add new item"
	if m.form.target != nil {
		title = "Edit item"
	}
	lines := []string{titleStyle.Render(title)}
	for i, ti := range m.form.inputs {
		lines = append(lines, labelStyle.Render(fieldLabels[i])+ti.View())
	}
	if m.form.err != "" {
		lines = append(lines, errorStyle.Render(m.form.err))
	}
	lines = append(lines, helpStyle.Render("tab next field • enter save • esc cancel"))
	return frameStyle.Render(strings.Join(lines, "\n"))
}

// RunOptions tune the interactive session.
type RunOptions struct {
	WatchPath string // reload when this file changes on disk; empty disables
	Logger    *log.Logger
}

// Run starts the Bubble Tea list and persists unsaved changes when quitting.
func Run(svc *app.Service, opt RunOptions) error {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := tea.NewProgram(NewModel(svc), tea.WithAltScreen())

	if opt.WatchPath != "" {
		w, err := watch.New(opt.WatchPath,
			watch.WithOnChange(func() { p.Send(fileChangedMsg{}) }),
			watch.WithOnError(func(err error) { p.Send(watchErrMsg{err: err}) }),
		)
		if err == nil {
			err = w.Start(context.Background())
		}
		if err != nil {
			logger.Warn("file watching disabled", "path", opt.WatchPath, "err", err)
		} else {
			defer w.Stop()
			svc.OnPersist(w.MarkWritten)
		}
	}

	if _, err := p.Run(); err != nil {
		return err
	}

	if svc.Dirty() {
		if err := svc.Persist(); err != nil {
			return err
		}
		OK("saved")
	}
	return nil
}
