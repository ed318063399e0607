package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showSettingsDialog opens the settings form: save directory, auto-reveal
// toggle, and the profile link
func (ui *RootUI) showSettingsDialog() {
	dirEntry := widget.NewEntry()
	dirEntry.SetText(ui.settings.GetSaveDirectory())

	browseButton := widget.NewButton(ui.loc.GetText(KeyBrowse), func() {
		dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
			if err != nil || list == nil {
				return
			}
			dirEntry.SetText(list.Path())
		}, ui.window)
	})

	autoRevealCheck := widget.NewCheck(ui.loc.GetText(KeyAutoReveal), nil)
	autoRevealCheck.SetChecked(ui.settings.GetAutoRevealOnSave())

	urlEntry := widget.NewEntry()
	urlEntry.SetText(ui.settings.GetProfileURL())

	form := container.NewVBox(
		widget.NewLabel(ui.loc.GetText(KeySaveDirectory)),
		container.NewBorder(nil, nil, nil, browseButton, dirEntry),
		autoRevealCheck,
		widget.NewLabel(ui.loc.GetText(KeyProfileURL)),
		urlEntry,
	)

	dialog.ShowCustomConfirm(
		ui.loc.GetText(KeySettings),
		ui.loc.GetText(KeySave),
		ui.loc.GetText(KeyCancel),
		form,
		func(save bool) {
			if !save {
				return
			}
			ui.settings.SetSaveDirectory(dirEntry.Text)
			ui.settings.SetAutoRevealOnSave(autoRevealCheck.Checked)
			ui.settings.SetProfileURL(urlEntry.Text)
			ui.downloader.SetSaveDirectory(dirEntry.Text)
			ShowToast(ui.window.Canvas(), ui.loc.GetText(KeySettingsSaved))
		},
		ui.window,
	)
}
