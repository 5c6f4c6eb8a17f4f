package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"smartmeal-planner/internal/user"
)

// Field order of the two auth forms. Login uses the first two labels.
var (
	loginLabels    = []string{"Email", "Mot de passe"}
	registerLabels = []string{"Prénom", "Nom", "Email", "Mot de passe", "Taille (cm)", "Poids (kg)"}
)

func (a *App) enterLogin() {
	a.state = stateLogin
	a.inputs = make([]textinput.Model, len(loginLabels))
	for i := range a.inputs {
		ti := textinput.New()
		ti.CharLimit = 80
		if i == 1 {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '*'
		}
		a.inputs[i] = ti
	}
	a.focus = 0
	a.inputs[0].Focus()
}

func (a *App) enterRegister() {
	a.state = stateRegister
	a.inputs = make([]textinput.Model, len(registerLabels))
	for i := range a.inputs {
		ti := textinput.New()
		ti.CharLimit = 80
		if i == 3 {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '*'
		}
		a.inputs[i] = ti
	}
	a.focus = 0
	a.inputs[0].Focus()
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			a.state = stateWelcome
			a.errMsg = ""
			return a, nil
		case "tab", "down":
			a.moveFocus(1)
			return a, nil
		case "shift+tab", "up":
			a.moveFocus(-1)
			return a, nil
		case "enter":
			if a.focus < len(a.inputs)-1 {
				a.moveFocus(1)
				return a, nil
			}
			return a.submitForm()
		}

	case loginResultMsg:
		if msg.err != nil {
			a.errMsg = authErrorText(msg.err)
			return a, nil
		}
		a.currentUser = msg.user
		return a.enterDashboard()

	case registerResultMsg:
		if msg.err != nil {
			a.errMsg = authErrorText(msg.err)
			return a, nil
		}
		// Back to the welcome screen so the new account can sign in,
		// mirroring the original flow.
		a.state = stateWelcome
		a.status = "Compte créé avec succès !"
		a.errMsg = ""
		return a, nil
	}

	// Forward everything else to the focused input.
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a *App) moveFocus(delta int) {
	a.inputs[a.focus].Blur()
	a.focus = (a.focus + delta + len(a.inputs)) % len(a.inputs)
	a.inputs[a.focus].Focus()
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	a.errMsg = ""
	if a.state == stateLogin {
		return a, a.loginCmd(a.inputs[0].Value(), a.inputs[1].Value())
	}

	height, errH := strconv.Atoi(strings.TrimSpace(a.inputs[4].Value()))
	weight, errW := strconv.ParseFloat(strings.TrimSpace(a.inputs[5].Value()), 64)
	if errH != nil || errW != nil {
		a.errMsg = "Taille et poids doivent être des nombres"
		return a, nil
	}

	reg := user.Registration{
		FirstName: strings.TrimSpace(a.inputs[0].Value()),
		LastName:  strings.TrimSpace(a.inputs[1].Value()),
		Email:     strings.TrimSpace(a.inputs[2].Value()),
		Password:  a.inputs[3].Value(),
		Height:    height,
		Weight:    weight,
	}
	return a, a.registerCmd(reg)
}

func authErrorText(err error) string {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		return "Email ou mot de passe incorrect"
	case errors.Is(err, user.ErrDuplicateEmail):
		return "Cet email est déjà utilisé"
	case errors.Is(err, user.ErrInvalidInput):
		return "Veuillez remplir tous les champs"
	default:
		return "Erreur: " + err.Error()
	}
}

func (a *App) viewLogin() string {
	return a.viewForm("Connexion", loginLabels)
}

func (a *App) viewRegister() string {
	return a.viewForm("Créer un compte", registerLabels)
}

func (a *App) viewForm(title string, labels []string) string {
	var b []string
	b = append(b, titleStyle.Render(title), "")
	for i, label := range labels {
		b = append(b, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(label+":"),
			a.inputs[i].View(),
		))
	}
	b = append(b, "", helpStyle.Render("tab champ suivant • entrée valider • échap retour"))
	if a.errMsg != "" {
		b = append(b, errorStyle.Render(a.errMsg))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, b...))
}
