package tui

type confirmModel struct {
	message string
	hard    bool
}

func (m confirmModel) View() string {
	content := "Move \"" + m.message + "\" to the trash?\n\n"
	if m.hard {
		content = "Delete \"" + m.message + "\" permanently?\nThis cannot be undone.\n\n"
	}
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
