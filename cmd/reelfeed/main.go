package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/reelfeed/internal/ui"
)

func main() {
	myApp := app.NewWithID("com.ytget.reelfeed")
	myApp.Settings().SetTheme(ui.NewReelTheme())

	myWindow := myApp.NewWindow("Reelfeed")
	myWindow.Resize(fyne.NewSize(800, 600))

	ui.NewRootUI(myWindow, myApp).LoadFeed()

	myWindow.ShowAndRun()
}
