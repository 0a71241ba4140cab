package main

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func TestEnterSubmitsFormDialog(t *testing.T) {
	test.NewApp()
	win := test.NewWindow(widget.NewLabel(""))
	defer win.Close()

	titleEntry := widget.NewEntry()
	startEntry := widget.NewEntry()
	confirmed := false
	d := dialog.NewForm("Edit Event", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Title", titleEntry),
			widget.NewFormItem("Start", startEntry),
		},
		func(ok bool) { confirmed = ok }, win)
	submitOnEnter(d, titleEntry, startEntry)
	d.Show()

	test.Type(startEntry, "20:30")
	startEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	if !confirmed {
		t.Error("Enter in a single-line entry should confirm the form")
	}
}

func TestEnterDoesNotSubmitUnwiredEntry(t *testing.T) {
	test.NewApp()
	win := test.NewWindow(widget.NewLabel(""))
	defer win.Close()

	notesEntry := widget.NewMultiLineEntry()
	wired := widget.NewEntry()
	confirmed := false
	d := dialog.NewForm("Edit Event", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Wired", wired),
			widget.NewFormItem("Notes", notesEntry),
		},
		func(ok bool) { confirmed = ok }, win)
	submitOnEnter(d, wired)
	d.Show()

	// Enter in the multiline notes field inserts a newline.
	test.Type(notesEntry, "hold the rigging")
	notesEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	if confirmed {
		t.Error("Enter in a multiline entry must not confirm the form")
	}
	d.Hide()
}
