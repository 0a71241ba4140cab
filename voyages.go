package main

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/venuedeck/venuedeck/pkg/schedule"
)

// confirmDiscard runs proceed immediately when the document is clean,
// otherwise asks first. Unpublished edits are only ever lost through
// this gate.
func (vd *VenueDeck) confirmDiscard(proceed func()) {
	if !vd.docs.Dirty() {
		proceed()
		return
	}
	vd.engine.SetBlocked(true)
	dialog.ShowConfirm("Discard Changes",
		"The current schedule has unpublished changes. Discard them?",
		func(confirmed bool) {
			vd.engine.SetBlocked(false)
			if confirmed {
				proceed()
			}
		}, vd.window.win)
}

// showOpenVoyage fetches the voyage list off the UI thread and offers
// it for hydration.
func (vd *VenueDeck) showOpenVoyage() {
	vd.confirmDiscard(func() {
		go func() {
			voyages, err := vd.client.ListVoyages()
			fyne.Do(func() {
				if err != nil {
					dialog.ShowError(fmt.Errorf("list voyages: %v", err), vd.window.win)
					return
				}
				vd.showVoyagePicker(voyages)
			})
		}()
	})
}

func (vd *VenueDeck) showVoyagePicker(voyages []schedule.VoyageSummary) {
	if len(voyages) == 0 {
		dialog.ShowInformation("No Voyages", "The schedule service has no voyages yet.", vd.window.win)
		return
	}

	rows := container.NewVBox()
	var d dialog.Dialog
	for _, voyage := range voyages {
		v := voyage
		label := fmt.Sprintf("%s  %s  sails %s", v.Ship, v.Name, v.SailDate.Format("Jan 2, 2006"))
		rows.Add(container.NewBorder(nil, nil, nil,
			widget.NewButton("Open", func() {
				d.Hide()
				vd.hydrate(v.ID)
			}),
			widget.NewLabel(label),
		))
	}

	vd.engine.SetBlocked(true)
	d = dialog.NewCustom("Open Voyage", "Cancel", container.NewVScroll(rows), vd.window.win)
	d.Resize(fyne.NewSize(480, 360))
	d.SetOnClosed(func() { vd.engine.SetBlocked(false) })
	d.Show()
}

// hydrate replaces the working document with the service's version of
// a voyage. The swap is atomic: history resets with the hydrated
// document as its floor.
func (vd *VenueDeck) hydrate(voyageID string) {
	go func() {
		doc, err := vd.client.Hydrate(voyageID)
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(fmt.Errorf("load voyage: %v", err), vd.window.win)
				return
			}
			vd.engine.Cancel()
			vd.docs.Replace(doc)
			vd.voyageID = voyageID
			vd.window.RefreshGrid()
			log.Printf("Hydrated voyage %s: %d events, %d days", voyageID, len(doc.Events), len(doc.Itinerary))
		})
	}()
}

// showNewDraft starts a blank schedule.
func (vd *VenueDeck) showNewDraft() {
	vd.confirmDiscard(func() {
		vd.engine.Cancel()
		vd.docs.Replace(newDraftDocument(vd.config.DefaultDays))
		vd.voyageID = ""
		vd.window.RefreshGrid()
	})
}

// publish sends the working document to the schedule service. A draft
// prompts for a voyage id first; a version conflict offers to reload
// the remote copy.
func (vd *VenueDeck) publish() {
	if vd.voyageID == "" {
		idEntry := widget.NewEntry()
		idEntry.SetPlaceHolder("voyage id")

		vd.engine.SetBlocked(true)
		d := dialog.NewForm("Publish Draft", "Publish", "Cancel",
			[]*widget.FormItem{widget.NewFormItem("Voyage", idEntry)},
			func(confirmed bool) {
				vd.engine.SetBlocked(false)
				if !confirmed || idEntry.Text == "" {
					return
				}
				vd.voyageID = idEntry.Text
				vd.publishTo(idEntry.Text)
			}, vd.window.win)
		submitOnEnter(d, idEntry)
		d.Show()
		return
	}
	vd.publishTo(vd.voyageID)
}

func (vd *VenueDeck) publishTo(voyageID string) {
	doc := vd.docs.Current()
	go func() {
		err := vd.client.Persist(voyageID, doc)
		fyne.Do(func() {
			if errors.Is(err, schedule.ErrConflict) {
				dialog.ShowConfirm("Version Conflict",
					"The voyage changed on the service since it was loaded. Reload the remote version? Local changes will be lost.",
					func(reload bool) {
						if reload {
							vd.hydrate(voyageID)
						}
					}, vd.window.win)
				return
			}
			if err != nil {
				dialog.ShowError(fmt.Errorf("publish: %v", err), vd.window.win)
				return
			}
			vd.docs.MarkPersisted()
			vd.window.updateStatus()
			log.Printf("Published voyage %s: %d events", voyageID, len(doc.Events))
		})
	}()
}

// showImport ingests a schedule file (ICS) into a fresh draft. The
// importer runs on a background goroutine; some pipelines take a
// while.
func (vd *VenueDeck) showImport() {
	vd.confirmDiscard(func() {
		vd.engine.SetBlocked(true)
		fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			vd.engine.SetBlocked(false)
			if err != nil {
				dialog.ShowError(err, vd.window.win)
				return
			}
			if reader == nil {
				return
			}
			path := reader.URI().Path()
			reader.Close()

			go func() {
				res, ingestErr := vd.ingestor.Ingest(path)
				fyne.Do(func() {
					if ingestErr != nil {
						dialog.ShowError(fmt.Errorf("import: %v", ingestErr), vd.window.win)
						return
					}
					vd.engine.Cancel()
					vd.docs.Replace(vd.adoptIngestResult(res))
					vd.voyageID = ""
					vd.window.RefreshGrid()
					log.Printf("Imported %s: %d events", path, len(res.Events))
				})
			}()
		}, vd.window.win)
		fileDialog.Show()
	})
}
