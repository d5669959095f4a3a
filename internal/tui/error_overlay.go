package tui

func renderErrorOverlay(message string) string {
	return overlayBoxStyle.Render(errorStyle.Render("Ошибка") + "\n\n" + message)
}
