package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shortage-keeper/internal/app"
	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/internal/mock"
	"github.com/MKhiriev/go-shortage-keeper/internal/service"
	"github.com/MKhiriev/go-shortage-keeper/models"
)

var (
	alice = models.Account{Name: "Alice", HashedPassword: "h1"}
	bob   = models.Account{Name: "Bob", HashedPassword: "h2"}
)

func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }
func keyEnter() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg        { return tea.KeyMsg{Type: tea.KeyEsc} }
func keyTab() tea.KeyMsg        { return tea.KeyMsg{Type: tea.KeyTab} }

func newTestMainLoop(
	t *testing.T,
	ctrl *gomock.Controller,
	actor models.Account,
	initial ...models.Shortage,
) (mainLoopModel, *mock.MockRecordStorage[models.Shortage]) {
	t.Helper()

	loaded := make(map[string]models.Shortage, len(initial))
	for _, s := range initial {
		loaded[s.Key()] = s
	}

	storage := mock.NewMockRecordStorage[models.Shortage](ctrl)
	storage.EXPECT().Load(gomock.Any()).Return(loaded, nil)

	svc, err := service.NewShortageService(context.Background(), storage, logger.Nop())
	require.NoError(t, err)

	return newMainLoopModel(context.Background(), service.NewShortageValidationService().Wrap(svc), actor), storage
}

func update(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(mainLoopModel)
	require.True(t, ok)
	return out, cmd
}

func coffee() models.Shortage {
	return models.Shortage{
		Title:        "Coffee",
		ReporterName: "Alice",
		Room:         models.RoomKitchen,
		Category:     models.CategoryFood,
		Priority:     5,
		CreatedOn:    models.NewDate(2024, 6, 1),
	}
}

func TestMainLoop_MenuNavigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMainLoop(t, ctrl, alice)

	m, _ = update(t, m, keyRune('1'))
	assert.Equal(t, screenAdd, m.screen)

	m, _ = update(t, m, keyEsc())
	assert.Equal(t, screenMenu, m.screen)

	m, _ = update(t, m, keyRune('3'))
	assert.Equal(t, screenRemove, m.screen)
	m, _ = update(t, m, keyEsc())

	m, _ = update(t, m, keyRune('4'))
	assert.Equal(t, screenFilter, m.screen)
	m, _ = update(t, m, keyEsc())

	m, cmd := update(t, m, keyRune('2'))
	assert.Equal(t, screenList, m.screen)
	assert.True(t, m.busy)
	assert.NotNil(t, cmd)
}

func TestMainLoop_ExitAndLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMainLoop(t, ctrl, alice)

	exited, cmd := update(t, m, keyRune('0'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.False(t, exited.logout)

	loggedOut, cmd := update(t, m, keyRune('l'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, loggedOut.logout)
}

func TestMainLoop_AddShortage(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, storage := newTestMainLoop(t, ctrl, alice)
	storage.EXPECT().Save(gomock.Any(), gomock.Len(1)).Return(nil)

	m, _ = update(t, m, keyRune('1'))
	m.add.inputs[0].SetValue("Coffee")
	m.add.inputs[1].SetValue("kitchen")
	m.add.inputs[2].SetValue("Food")
	m.add.inputs[3].SetValue("5")
	m.add.focus = focusInput(m.add.inputs, m.add.focus, 3)

	m, cmd := update(t, m, keyEnter())
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.Empty(t, m.errMsg)

	shortage, err := buildShortage("Coffee", alice.Name, "kitchen", "Food", "5", models.Today())
	require.NoError(t, err)
	msg := m.cmdAdd(shortage)()

	m, _ = update(t, m, msg)
	assert.False(t, m.busy)
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, "Shortage added successfully", m.status)
}

func TestMainLoop_AddShortage_InvalidPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMainLoop(t, ctrl, alice)

	m, _ = update(t, m, keyRune('1'))
	m.add.inputs[0].SetValue("Coffee")
	m.add.inputs[1].SetValue("kitchen")
	m.add.inputs[2].SetValue("Food")
	m.add.inputs[3].SetValue("urgent")
	m.add.focus = focusInput(m.add.inputs, m.add.focus, 3)

	m, cmd := update(t, m, keyEnter())
	assert.Nil(t, cmd)
	assert.False(t, m.busy)
	assert.Equal(t, screenAdd, m.screen)
	assert.Equal(t, app.MsgInvalidPriority, m.errMsg)
}

func TestMainLoop_AddShortage_SaveFailureOpensOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, storage := newTestMainLoop(t, ctrl, alice)
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	m.screen = screenAdd
	m, _ = update(t, m, m.cmdAdd(coffee())())

	require.NotNil(t, m.overlay)
	assert.Equal(t, app.MsgInternalError, m.overlay.message)
	assert.Equal(t, screenAdd, m.screen)

	m, _ = update(t, m, keyEsc())
	assert.Nil(t, m.overlay)
}

func TestMainLoop_RemoveShortage(t *testing.T) {
	t.Run("reporter removes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, storage := newTestMainLoop(t, ctrl, alice, coffee())
		storage.EXPECT().Save(gomock.Any(), gomock.Len(0)).Return(nil)

		m.screen = screenRemove
		m, _ = update(t, m, m.cmdRemove("coffee", models.RoomKitchen)())
		assert.Equal(t, screenMenu, m.screen)
		assert.Equal(t, "Shortage deleted successfully", m.status)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, _ := newTestMainLoop(t, ctrl, bob, coffee())

		m.screen = screenRemove
		m, _ = update(t, m, m.cmdRemove("Coffee", models.RoomKitchen)())
		assert.Equal(t, "You do not have permission to delete this shortage", m.status)
	})

	t.Run("unknown shortage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, _ := newTestMainLoop(t, ctrl, alice)

		m.screen = screenRemove
		m, _ = update(t, m, m.cmdRemove("Tea", models.RoomKitchen)())
		assert.Equal(t, "Shortage not found", m.status)
	})
}

func TestMainLoop_ListScopedToActor(t *testing.T) {
	bobs := coffee()
	bobs.Title = "Projector"
	bobs.ReporterName = "Bob"
	bobs.Room = models.RoomMeetingRoom

	ctrl := gomock.NewController(t)
	m, _ := newTestMainLoop(t, ctrl, bob, coffee(), bobs)

	m, _ = update(t, m, keyRune('2'))
	m, _ = update(t, m, m.cmdList(nil)())

	assert.False(t, m.busy)
	require.Len(t, m.list.items, 1)
	assert.Equal(t, "Projector", m.list.items[0].Title)
	assert.Contains(t, m.View(), "Projector")
	assert.NotContains(t, m.View(), "Coffee")
}

func TestMainLoop_FilteredList(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMainLoop(t, ctrl, alice, coffee())

	m, _ = update(t, m, keyRune('4'))
	m.filter.inputs[0].SetValue("tea")
	m.filter.focus = focusInput(m.filter.inputs, m.filter.focus, 4)

	m, cmd := update(t, m, keyEnter())
	require.NotNil(t, cmd)
	assert.Equal(t, screenList, m.screen)
	require.NotNil(t, m.list.filter)

	m, _ = update(t, m, m.cmdList(m.list.filter)())
	assert.Empty(t, m.list.items)
	assert.Contains(t, m.View(), app.MsgNoShortagesFound)
	assert.Equal(t, "FILTERED SHORTAGES", m.list.title)
}

func TestMainLoop_FilterKeepsTitleSpaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMainLoop(t, ctrl, alice, coffee())

	m, _ = update(t, m, keyRune('4'))
	m.filter.inputs[0].SetValue("offee ")
	m.filter.focus = focusInput(m.filter.inputs, m.filter.focus, 4)

	m, _ = update(t, m, keyEnter())
	require.NotNil(t, m.list.filter)
	require.NotNil(t, m.list.filter.Title)
	assert.Equal(t, "offee ", *m.list.filter.Title)

	m, _ = update(t, m, m.cmdList(m.list.filter)())
	assert.Empty(t, m.list.items)
}

func TestMainLoop_EmptyFilterListsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMainLoop(t, ctrl, alice, coffee())

	m, _ = update(t, m, keyRune('4'))
	m.filter.inputs[1].SetValue("not a date")
	m.filter.focus = focusInput(m.filter.inputs, m.filter.focus, 4)

	m, cmd := update(t, m, keyEnter())
	require.NotNil(t, cmd)
	assert.Equal(t, screenList, m.screen)
	assert.Nil(t, m.list.filter)

	m, _ = update(t, m, m.cmdList(m.list.filter)())
	assert.Equal(t, []models.Shortage{coffee()}, m.list.items)
	assert.Equal(t, "ALL SHORTAGES", m.list.title)
}

func TestMainLoop_DeleteFromList(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, storage := newTestMainLoop(t, ctrl, alice, coffee())
	storage.EXPECT().Save(gomock.Any(), gomock.Len(0)).Return(nil)

	m.screen = screenList
	m.list = newListModel("ALL SHORTAGES", nil)
	m, _ = update(t, m, listLoadedMsg{items: []models.Shortage{coffee()}})

	m, _ = update(t, m, keyRune('d'))
	require.NotNil(t, m.list.confirm)

	m, _ = update(t, m, keyRune('n'))
	assert.Nil(t, m.list.confirm)

	m, _ = update(t, m, keyRune('d'))
	m, cmd := update(t, m, keyRune('y'))
	require.NotNil(t, cmd)
	assert.Nil(t, m.list.confirm)
	assert.True(t, m.busy)

	m, cmd = update(t, m, m.cmdRemove("Coffee", models.RoomKitchen)())
	require.NotNil(t, cmd)
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "Shortage deleted successfully", m.status)
	assert.True(t, m.busy, "list reloads after a delete")
}

func TestMainLoop_ClearStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestMainLoop(t, ctrl, alice)
	m.status = "Login successful"

	assert.NotNil(t, m.Init())

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}
