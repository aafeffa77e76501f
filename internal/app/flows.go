package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/pokedex/internal/dex"
	"github.com/zjrosen/pokedex/internal/log"
	"github.com/zjrosen/pokedex/internal/pokedex"
	"github.com/zjrosen/pokedex/internal/presentation"
	"github.com/zjrosen/pokedex/internal/registry"
	"github.com/zjrosen/pokedex/internal/ui/styles"
)

// step is one prompt. Exactly one of onNumber and onText is set.
type step struct {
	prompt   string
	menu     bool
	onNumber func(m *Model, n int)
	onText   func(m *Model, s string)
}

// draft holds answers collected across the prompts of one flow.
type draft struct {
	name    string
	firstID int
	dir     registry.Direction
}

func (m *Model) ask(st step) {
	m.step = st
	m.input.Prompt = styles.PromptStyle.Render(st.prompt)
}

// cancelPrompt abandons a multi-prompt flow and returns to its menu.
func (m *Model) cancelPrompt() {
	if m.step.menu {
		return
	}
	m.println(hintLine("Cancelled."))
	m.draft = draft{}
	if m.owner != nil {
		m.showPokedexMenu()
		return
	}
	m.showMainMenu()
}

// Main menu

func (m *Model) showMainMenu() {
	m.owner = nil
	m.draft = draft{}
	m.println("", titleLine("=== Main Menu ==="))
	m.printMenu(
		"New Pokedex",
		"Existing Pokedex",
		"Delete a Pokedex",
		"Merge Pokedexes",
		"Sort Owners by Name",
		"Print Owners in a direction X times",
		"Exit",
	)
	m.ask(step{prompt: "Your choice: ", menu: true, onNumber: (*Model).mainChoice})
}

func (m *Model) mainChoice(choice int) {
	log.Debug(log.CatUI, "Main menu", "choice", choice)
	switch choice {
	case 1:
		m.ask(step{prompt: "Your name: ", onText: (*Model).newPokedexName})
	case 2:
		m.chooseExisting()
	case 3:
		m.chooseDelete()
	case 4:
		m.startMerge()
	case 5:
		m.report(presentation.Sorted(m.svc.SortOwners(m.ctx)), nil)
		m.showMainMenu()
	case 6:
		m.startRotate()
	case 7:
		m.println("Goodbye!")
		m.quitting = true
		m.cmds = append(m.cmds, tea.Quit)
	default:
		m.println(errorLine("Invalid."))
		m.showMainMenu()
	}
}

// New Pokedex: the name is checked before the starter is asked for.

func (m *Model) newPokedexName(name string) {
	if name == "" {
		m.println(errorLine("Owner name is required."))
		m.ask(step{prompt: "Your name: ", onText: (*Model).newPokedexName})
		return
	}
	if _, err := m.svc.Registry().FindByName(name); err == nil {
		m.report(presentation.Created(name, nil, pokedex.ErrDuplicateName), pokedex.ErrDuplicateName)
		m.showMainMenu()
		return
	}
	m.draft.name = name
	m.println("Choose Starter:")
	m.printMenu(m.svc.Starters()...)
	m.ask(step{prompt: "Your choice: ", onNumber: (*Model).newPokedexStarter})
}

func (m *Model) newPokedexStarter(choice int) {
	owner, err := m.svc.NewPokedex(m.ctx, m.draft.name, choice)
	m.report(presentation.Created(m.draft.name, owner, err), err)
	m.showMainMenu()
}

// Existing Pokedex

func (m *Model) chooseExisting() {
	if m.svc.Registry().Empty() {
		m.println("No existing Pokedexes.")
		m.showMainMenu()
		return
	}
	m.println("", "Existing Pokedexes:")
	m.println(presentation.OwnerList(m.svc.Owners())...)
	m.ask(step{prompt: "Choose a Pokedex by number: ", onNumber: (*Model).openPokedex})
}

func (m *Model) openPokedex(index int) {
	owner, err := m.svc.OwnerAt(index)
	if err != nil {
		m.println(errorLine("Invalid choice."))
		m.showMainMenu()
		return
	}
	m.owner = owner
	m.println("", fmt.Sprintf("Entering %s's Pokedex...", owner.Name))
	m.showPokedexMenu()
}

// Pokedex menu

func (m *Model) showPokedexMenu() {
	m.draft = draft{}
	m.println("", titleLine(fmt.Sprintf("-- %s's Pokedex Menu --", m.owner.Name)))
	m.printMenu(
		"Add Pokemon",
		"Display Pokedex",
		"Release Pokemon (by ID)",
		"Pokemon Fight!",
		"Evolve Pokemon",
		"Back to Main",
	)
	m.ask(step{prompt: "Your choice: ", menu: true, onNumber: (*Model).pokedexChoice})
}

func (m *Model) pokedexChoice(choice int) {
	log.Debug(log.CatUI, "Pokedex menu", "owner", m.owner.Name, "choice", choice)
	empty := m.owner.Dex.Empty()

	switch choice {
	case 1:
		m.ask(step{prompt: "Enter ID to add: ", onNumber: (*Model).addRecord})
	case 2:
		if empty {
			m.println("Pokedex is empty.")
			m.showPokedexMenu()
			return
		}
		m.println("Display:")
		m.printMenu(orderLabels()...)
		m.ask(step{prompt: "Your choice: ", onNumber: (*Model).display})
	case 3:
		if empty {
			m.report(presentation.Released(0, nil, pokedex.ErrEmptyPokedex), pokedex.ErrEmptyPokedex)
			m.showPokedexMenu()
			return
		}
		m.ask(step{prompt: "Enter Pokemon ID to release: ", onNumber: (*Model).release})
	case 4:
		if empty {
			m.println("Pokedex is empty.")
			m.showPokedexMenu()
			return
		}
		m.ask(step{prompt: "Enter ID of the first Pokemon: ", onNumber: (*Model).fightFirst})
	case 5:
		if empty {
			m.println("Cannot evolve. Pokedex empty.")
			m.showPokedexMenu()
			return
		}
		m.ask(step{prompt: "Enter ID of Pokemon to evolve: ", onNumber: (*Model).evolve})
	case 6:
		m.println("Back to Main Menu.")
		m.showMainMenu()
	default:
		m.println(errorLine("Invalid choice."))
		m.showPokedexMenu()
	}
}

func (m *Model) addRecord(id int) {
	rec, err := m.svc.Add(m.ctx, m.owner, id)
	m.report(presentation.Added(id, rec, err), err)
	m.showPokedexMenu()
}

func orderLabels() []string {
	orders := dex.Orders()
	labels := make([]string, len(orders))
	for i, o := range orders {
		labels[i] = o.String()
	}
	return labels
}

func (m *Model) display(choice int) {
	order, err := dex.ParseOrder(choice)
	if err != nil {
		m.println(errorLine("Invalid choice."))
		m.showPokedexMenu()
		return
	}
	var lines []string
	err = m.svc.Display(m.owner, order, func(r *dex.Record) {
		lines = append(lines, recordLine(r))
	})
	m.println(lines...)
	if errors.Is(err, pokedex.ErrEmptyPokedex) {
		m.println("Pokedex is empty.")
	}
	m.showPokedexMenu()
}

func (m *Model) release(id int) {
	rec, err := m.svc.Release(m.ctx, m.owner, id)
	m.report(presentation.Released(id, rec, err), err)
	m.showPokedexMenu()
}

func (m *Model) fightFirst(id int) {
	m.draft.firstID = id
	m.ask(step{prompt: "Enter ID of the second Pokemon: ", onNumber: (*Model).fightSecond})
}

func (m *Model) fightSecond(id int) {
	res, err := m.svc.Fight(m.ctx, m.owner, m.draft.firstID, id)
	lines := presentation.Fought(res, err)
	if err != nil {
		m.report(lines[0], err)
	} else {
		m.println(lines[:len(lines)-1]...)
		m.println(successLine(lines[len(lines)-1]))
	}
	m.showPokedexMenu()
}

func (m *Model) evolve(id int) {
	res, err := m.svc.Evolve(m.ctx, m.owner, id)
	m.report(presentation.Evolved(id, res, err), err)
	m.showPokedexMenu()
}

// Delete

func (m *Model) chooseDelete() {
	if m.svc.Registry().Empty() {
		m.println("No existing Pokedexes to delete.")
		m.showMainMenu()
		return
	}
	m.println("", titleLine("=== Delete a Pokedex ==="))
	m.println(presentation.OwnerList(m.svc.Owners())...)
	m.ask(step{prompt: "Choose a Pokedex to delete by number: ", onNumber: (*Model).deletePokedex})
}

func (m *Model) deletePokedex(index int) {
	if o, err := m.svc.OwnerAt(index); err == nil {
		m.println(fmt.Sprintf("Deleting %s's entire Pokedex...", o.Name))
	}
	name, err := m.svc.DeletePokedex(m.ctx, index)
	m.report(presentation.Deleted(name, m.svc.Registry().Len(), err), err)
	m.showMainMenu()
}

// Merge

func (m *Model) startMerge() {
	if m.svc.Registry().Len() < 2 {
		m.println(errorLine("Not enough owners to merge."))
		m.showMainMenu()
		return
	}
	m.println("", titleLine("=== Merge Pokedexes ==="))
	m.ask(step{prompt: "Enter name of first owner: ", onText: (*Model).mergeFirst})
}

func (m *Model) mergeFirst(name string) {
	m.draft.name = name
	m.ask(step{prompt: "Enter name of second owner: ", onText: (*Model).mergeSecond})
}

func (m *Model) mergeSecond(name string) {
	res, err := m.svc.Merge(m.ctx, m.draft.name, name)
	lines := presentation.Merged(m.draft.name, name, res, err)
	if err != nil {
		m.report(lines[0], err)
	} else {
		m.println(lines[:len(lines)-1]...)
		m.report(lines[len(lines)-1], nil)
	}
	m.showMainMenu()
}

// Print owners in a direction

func (m *Model) startRotate() {
	if m.svc.Registry().Empty() {
		m.println("No owners.")
		m.showMainMenu()
		return
	}
	m.ask(step{prompt: "Enter direction (F or B): ", onText: (*Model).rotateDirection})
}

func (m *Model) rotateDirection(s string) {
	dir, err := registry.ParseDirection(s)
	if err != nil {
		m.println(errorLine("Invalid direction, must be F or B."))
		m.ask(step{prompt: "Enter direction (F or B): ", onText: (*Model).rotateDirection})
		return
	}
	m.draft.dir = dir
	m.ask(step{prompt: "How many prints? ", onNumber: (*Model).rotateCount})
}

// rotateCount prints count owners in one batch. Only the newest lines that
// fit in the scrollback are kept while walking, so large counts stay cheap.
func (m *Model) rotateCount(count int) {
	limit := m.cfg.UI.MaxOutputLines
	var lines []string
	m.svc.Rotate(m.draft.dir, count, func(i int, o *registry.Owner) {
		lines = append(lines, presentation.Rotation(i, o))
		if limit > 0 && len(lines) >= 2*limit {
			lines = append(lines[:0], lines[len(lines)-limit:]...)
		}
	})
	m.println(lines...)
	m.showMainMenu()
}
