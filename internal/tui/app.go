// Package tui is the terminal presentation layer. It follows
// bubbletea's Elm architecture: one model, messages in, a rendered
// string out. All business logic lives behind app.App.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"smartmeal-planner/internal/app"
	"smartmeal-planner/internal/planner"
	"smartmeal-planner/internal/user"
)

// appState represents which screen we're on.
type appState int

const (
	stateWelcome appState = iota
	stateLogin
	stateRegister
	stateDashboard
)

// dashTab is one of the dashboard's four tabs.
type dashTab int

const (
	tabGenerate dashTab = iota
	tabPlans
	tabRecipes
	tabProfile
)

var tabNames = []string{"🍽️ Générer", "📅 Mes plans", "📖 Recettes", "👤 Profil"}

var welcomeChoices = []string{"Se connecter", "Créer un compte", "Essayer en mode démo", "Quitter"}

// App is the main application model.
type App struct {
	svc         *app.App
	state       appState
	currentUser *user.User

	width  int
	height int
	status string
	errMsg string

	// Welcome menu
	menuIndex int

	// Login / register forms
	inputs []textinput.Model
	focus  int

	// Dashboard
	tab dashTab

	// Generate tab
	genInputs    []textinput.Model
	genFocus     int
	generated    *planner.GeneratedPlan
	reportView   viewport.Model
	viewingGen   bool
	showShopping bool
	savePrompt   bool
	saveName     textinput.Model

	// Plans tab
	planList      list.Model
	plans         []planner.SavedPlan
	viewingPlan   *planner.SavedPlan
	confirmDelete bool

	// Recipes tab
	searchInput textinput.Model
	recipeList  list.Model
	searching   bool
	importInput textinput.Model
	importing   bool

	// Profile tab
	planCount int
}

// New creates the TUI model over the application service.
func New(svc *app.App) *App {
	a := &App{
		svc:   svc,
		state: stateWelcome,
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(colorPrimary).BorderLeftForeground(colorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(colorDark).BorderLeftForeground(colorPrimary)

	a.planList = list.New(nil, delegate, 0, 0)
	a.planList.Title = "Vos plans alimentaires sauvegardés"
	a.planList.SetShowStatusBar(false)
	a.planList.SetFilteringEnabled(false)

	a.recipeList = list.New(nil, delegate, 0, 0)
	a.recipeList.Title = "Catalogue de recettes"
	a.recipeList.SetShowStatusBar(false)
	a.recipeList.SetFilteringEnabled(false)

	a.searchInput = textinput.New()
	a.searchInput.Placeholder = "Rechercher une recette..."
	a.searchInput.CharLimit = 60

	a.importInput = textinput.New()
	a.importInput.Placeholder = "Chemin du fichier HTML..."
	a.importInput.CharLimit = 200

	a.saveName = textinput.New()
	a.saveName.Placeholder = "Nom du plan (vide = date du jour)"
	a.saveName.CharLimit = 80

	a.reportView = viewport.New(0, 0)

	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentHeight := max(msg.Height-6, 5)
		a.planList.SetSize(msg.Width-4, contentHeight)
		a.recipeList.SetSize(msg.Width-4, contentHeight)
		a.reportView.Width = msg.Width - 4
		a.reportView.Height = contentHeight
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	switch a.state {
	case stateWelcome:
		return a.updateWelcome(msg)
	case stateLogin, stateRegister:
		return a.updateForm(msg)
	case stateDashboard:
		return a.updateDashboard(msg)
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	switch a.state {
	case stateWelcome:
		return a.viewWelcome()
	case stateLogin:
		return a.viewLogin()
	case stateRegister:
		return a.viewRegister()
	case stateDashboard:
		return a.viewDashboard()
	}
	return ""
}

func (a *App) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if a.menuIndex > 0 {
			a.menuIndex--
		}
	case "down", "j":
		if a.menuIndex < len(welcomeChoices)-1 {
			a.menuIndex++
		}
	case "q", "esc":
		return a, tea.Quit
	case "enter":
		a.errMsg = ""
		a.status = ""
		switch a.menuIndex {
		case 0:
			a.enterLogin()
		case 1:
			a.enterRegister()
		case 2:
			// Demo mode: browse and generate without an account.
			a.currentUser = &user.User{ID: "demo", FirstName: "Utilisateur"}
			return a.enterDashboard()
		case 3:
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a *App) viewWelcome() string {
	var b []string
	b = append(b,
		titleStyle.Render("SmartMeal-Planner"),
		subtitleStyle.Render("Repas sains & intelligents"),
		"",
	)
	for i, choice := range welcomeChoices {
		if i == a.menuIndex {
			b = append(b, menuSelectedStyle.Render("➜ "+choice))
		} else {
			b = append(b, menuItemStyle.Render("  "+choice))
		}
	}
	b = append(b, "", helpStyle.Render("↑/↓ naviguer • entrée valider • q quitter"))
	if a.errMsg != "" {
		b = append(b, errorStyle.Render(a.errMsg))
	}
	if a.status != "" {
		b = append(b, statusStyle.Render(a.status))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, b...))
}

// enterDashboard switches to the dashboard and kicks off the initial
// loads for its tabs.
func (a *App) enterDashboard() (tea.Model, tea.Cmd) {
	a.state = stateDashboard
	a.tab = tabGenerate
	a.errMsg = ""
	a.status = ""
	a.initGenerateForm()
	return a, tea.Batch(
		a.loadPlansCmd(a.currentUser.ID),
		a.loadRecipesCmd(""),
		a.planCountCmd(a.currentUser.ID),
	)
}
